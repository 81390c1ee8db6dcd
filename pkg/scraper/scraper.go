// Package scraper implements twitter.Client on top of the
// github.com/imperatrona/twitter-scraper library, which talks to Twitter's
// web endpoints using a cookie-authenticated session rather than the official
// API. Session blobs are the scraper's cookie jar serialized as JSON.
package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	twitterscraper "github.com/imperatrona/twitter-scraper"

	"github.com/harun/mcp-twitter/pkg/twitter"
)

// createdAtLayout matches Twitter's classic timestamp format.
const createdAtLayout = "Mon Jan 02 15:04:05 -0700 2006"

// Client adapts a twitterscraper.Scraper to the twitter.Client interface.
// A Client carries session state and must not be shared across invocations.
type Client struct {
	scraper *twitterscraper.Scraper
}

var _ twitter.Client = (*Client)(nil)

// New builds an unauthenticated client. A non-empty user agent overrides the
// scraper's default browser headers.
func New(userAgent string) *Client {
	s := twitterscraper.New()
	if userAgent != "" {
		s.SetUserAgent(userAgent)
	}
	return &Client{scraper: s}
}

// Factory returns a session.Factory producing fresh clients.
func Factory() func(userAgent string) twitter.Client {
	return func(userAgent string) twitter.Client {
		return New(userAgent)
	}
}

// RestoreSession loads a JSON-encoded cookie jar. The cookies are installed
// as-is; expiry only surfaces when an operation hits the network.
func (c *Client) RestoreSession(data []byte) error {
	var cookies []*http.Cookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		return fmt.Errorf("failed to decode cookies: %w", err)
	}
	c.scraper.SetCookies(cookies)
	return nil
}

// ExportSession serializes the current cookie jar.
func (c *Client) ExportSession() ([]byte, error) {
	data, err := json.Marshal(c.scraper.GetCookies())
	if err != nil {
		return nil, fmt.Errorf("failed to encode cookies: %w", err)
	}
	return data, nil
}

// Login authenticates with username and password; the email is passed along
// when set, which Twitter sometimes demands as a confirmation step.
func (c *Client) Login(ctx context.Context, creds twitter.Credentials) error {
	if creds.Email != "" {
		return c.scraper.Login(creds.Username, creds.Password, creds.Email)
	}
	return c.scraper.Login(creds.Username, creds.Password)
}

func (c *Client) SearchTweets(ctx context.Context, query string, sort twitter.SearchSort, count int) ([]twitter.Tweet, error) {
	if sort == twitter.SearchLatest {
		c.scraper.SetSearchMode(twitterscraper.SearchLatest)
	} else {
		c.scraper.SetSearchMode(twitterscraper.SearchTop)
	}
	return collectTweets(c.scraper.SearchTweets(ctx, query, count))
}

func (c *Client) UserByScreenName(ctx context.Context, username string) (*twitter.User, error) {
	profile, err := c.scraper.GetProfile(username)
	if err != nil {
		return nil, err
	}
	user := convertProfile(&profile)
	return &user, nil
}

// UserTweets reads one of a user's timelines. The Likes timeline has no
// endpoint in the backing library and stays unsupported.
func (c *Client) UserTweets(ctx context.Context, username string, kind twitter.TweetKind, count int) ([]twitter.Tweet, error) {
	switch kind {
	case twitter.KindTweets, "":
		return collectTweets(c.scraper.GetTweets(ctx, username, count))
	case twitter.KindReplies:
		return collectTweets(c.scraper.GetTweetsAndReplies(ctx, username, count))
	case twitter.KindMedia:
		return collectTweets(c.scraper.GetMediaTweets(ctx, username, count))
	default:
		return nil, fmt.Errorf("%w: %s tweets", twitter.ErrUnsupported, kind)
	}
}

func (c *Client) HomeTimeline(ctx context.Context, count int) ([]twitter.Tweet, error) {
	return collectTweets(c.scraper.GetForYouTweets(ctx, count))
}

func (c *Client) FollowingTimeline(ctx context.Context, count int) ([]twitter.Tweet, error) {
	return collectTweets(c.scraper.GetHomeTweets(ctx, count))
}

// CreateTweet posts a plain-text tweet. The backing library's NewTweet
// carries no reply target, media IDs or poll card, so drafts using those
// stay unsupported.
func (c *Client) CreateTweet(ctx context.Context, draft twitter.TweetDraft) (*twitter.Tweet, error) {
	if draft.ReplyTo != "" {
		return nil, fmt.Errorf("%w: reply threading", twitter.ErrUnsupported)
	}
	if len(draft.MediaIDs) > 0 || draft.PollURI != "" {
		return nil, fmt.Errorf("%w: media and poll attachments", twitter.ErrUnsupported)
	}

	tweet, err := c.scraper.CreateTweet(twitterscraper.NewTweet{Text: draft.Text})
	if err != nil {
		return nil, err
	}
	converted := convertTweet(tweet)
	return &converted, nil
}

func (c *Client) LikeTweet(ctx context.Context, tweetID string) error {
	return c.scraper.LikeTweet(tweetID)
}

func (c *Client) Retweet(ctx context.Context, tweetID string) error {
	_, err := c.scraper.CreateRetweet(tweetID)
	return err
}

func (c *Client) FollowUser(ctx context.Context, userID string) error {
	return fmt.Errorf("%w: follow user", twitter.ErrUnsupported)
}

func (c *Client) UnfollowUser(ctx context.Context, userID string) error {
	return fmt.Errorf("%w: unfollow user", twitter.ErrUnsupported)
}

func (c *Client) BlockUser(ctx context.Context, userID string) error {
	return fmt.Errorf("%w: block user", twitter.ErrUnsupported)
}

func (c *Client) UnblockUser(ctx context.Context, userID string) error {
	return fmt.Errorf("%w: unblock user", twitter.ErrUnsupported)
}

func (c *Client) Followers(ctx context.Context, username string, count int) ([]twitter.User, error) {
	profiles, _, err := c.scraper.FetchFollowers(username, count, "")
	if err != nil {
		return nil, err
	}
	return convertProfiles(profiles), nil
}

func (c *Client) Following(ctx context.Context, username string, count int) ([]twitter.User, error) {
	profiles, _, err := c.scraper.FetchFollowing(username, count, "")
	if err != nil {
		return nil, err
	}
	return convertProfiles(profiles), nil
}

func (c *Client) SendDirectMessage(ctx context.Context, userID, text, mediaID string) (*twitter.DirectMessage, error) {
	return nil, fmt.Errorf("%w: send direct message", twitter.ErrUnsupported)
}

// Trends returns the current trending topics. The scraper exposes only the
// default trending feed, so the category narrows nothing; it is kept for the
// result header. Tweet volumes are not part of the scraped payload and stay
// zero.
func (c *Client) Trends(ctx context.Context, category string, count int) ([]twitter.Trend, error) {
	names, err := c.scraper.GetTrends()
	if err != nil {
		return nil, err
	}
	if count > 0 && len(names) > count {
		names = names[:count]
	}
	trends := make([]twitter.Trend, 0, len(names))
	for _, name := range names {
		trends = append(trends, twitter.Trend{Name: name})
	}
	return trends, nil
}

func collectTweets(ch <-chan *twitterscraper.TweetResult) ([]twitter.Tweet, error) {
	var tweets []twitter.Tweet
	for result := range ch {
		if result.Error != nil {
			return nil, result.Error
		}
		tweets = append(tweets, convertTweet(&result.Tweet))
	}
	return tweets, nil
}

func convertTweet(t *twitterscraper.Tweet) twitter.Tweet {
	createdAt := ""
	if !t.TimeParsed.IsZero() {
		createdAt = t.TimeParsed.In(time.UTC).Format(createdAtLayout)
	}
	return twitter.Tweet{
		ID:        t.ID,
		Username:  t.Username,
		Text:      t.Text,
		CreatedAt: createdAt,
		Timestamp: t.TimeParsed,
		Likes:     t.Likes,
		Retweets:  t.Retweets,
	}
}

func convertProfile(p *twitterscraper.Profile) twitter.User {
	createdAt := ""
	if p.Joined != nil {
		createdAt = p.Joined.Format(createdAtLayout)
	}
	return twitter.User{
		ID:              p.UserID,
		Name:            p.Name,
		ScreenName:      p.Username,
		Description:     p.Biography,
		Verified:        p.IsVerified,
		FollowersCount:  p.FollowersCount,
		FollowingCount:  p.FollowingCount,
		Location:        p.Location,
		CreatedAt:       createdAt,
		ProfileImageURL: p.Avatar,
		BannerURL:       p.Banner,
	}
}

func convertProfiles(profiles []*twitterscraper.Profile) []twitter.User {
	users := make([]twitter.User, 0, len(profiles))
	for _, p := range profiles {
		users = append(users, convertProfile(p))
	}
	return users
}
