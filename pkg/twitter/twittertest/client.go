// Package twittertest provides a function-field fake of twitter.Client for
// tests. Unset fields make the corresponding call fail, so a test only wires
// the operations it expects to be hit.
package twittertest

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/harun/mcp-twitter/pkg/twitter"
)

// ErrNotWired is returned by any fake operation without a configured func.
var ErrNotWired = errors.New("twittertest: operation not wired")

// Client is a fake twitter.Client. Counters record how often the session
// operations ran; they are atomic so concurrent acquisition tests can share
// one fake.
type Client struct {
	RestoreSessionFunc func(data []byte) error
	ExportSessionFunc  func() ([]byte, error)
	LoginFunc          func(ctx context.Context, creds twitter.Credentials) error

	SearchTweetsFunc      func(ctx context.Context, query string, sort twitter.SearchSort, count int) ([]twitter.Tweet, error)
	UserByScreenNameFunc  func(ctx context.Context, username string) (*twitter.User, error)
	UserTweetsFunc        func(ctx context.Context, username string, kind twitter.TweetKind, count int) ([]twitter.Tweet, error)
	HomeTimelineFunc      func(ctx context.Context, count int) ([]twitter.Tweet, error)
	FollowingTimelineFunc func(ctx context.Context, count int) ([]twitter.Tweet, error)
	CreateTweetFunc       func(ctx context.Context, draft twitter.TweetDraft) (*twitter.Tweet, error)
	LikeTweetFunc         func(ctx context.Context, tweetID string) error
	RetweetFunc           func(ctx context.Context, tweetID string) error
	FollowUserFunc        func(ctx context.Context, userID string) error
	UnfollowUserFunc      func(ctx context.Context, userID string) error
	BlockUserFunc         func(ctx context.Context, userID string) error
	UnblockUserFunc       func(ctx context.Context, userID string) error
	FollowersFunc         func(ctx context.Context, username string, count int) ([]twitter.User, error)
	FollowingFunc         func(ctx context.Context, username string, count int) ([]twitter.User, error)
	SendDirectMessageFunc func(ctx context.Context, userID, text, mediaID string) (*twitter.DirectMessage, error)
	TrendsFunc            func(ctx context.Context, category string, count int) ([]twitter.Trend, error)

	LoginCalls   atomic.Int64
	RestoreCalls atomic.Int64
	ExportCalls  atomic.Int64
}

var _ twitter.Client = (*Client)(nil)

func (c *Client) RestoreSession(data []byte) error {
	c.RestoreCalls.Add(1)
	if c.RestoreSessionFunc == nil {
		return nil
	}
	return c.RestoreSessionFunc(data)
}

func (c *Client) ExportSession() ([]byte, error) {
	c.ExportCalls.Add(1)
	if c.ExportSessionFunc == nil {
		return []byte(`[]`), nil
	}
	return c.ExportSessionFunc()
}

func (c *Client) Login(ctx context.Context, creds twitter.Credentials) error {
	c.LoginCalls.Add(1)
	if c.LoginFunc == nil {
		return nil
	}
	return c.LoginFunc(ctx, creds)
}

func (c *Client) SearchTweets(ctx context.Context, query string, sort twitter.SearchSort, count int) ([]twitter.Tweet, error) {
	if c.SearchTweetsFunc == nil {
		return nil, ErrNotWired
	}
	return c.SearchTweetsFunc(ctx, query, sort, count)
}

func (c *Client) UserByScreenName(ctx context.Context, username string) (*twitter.User, error) {
	if c.UserByScreenNameFunc == nil {
		return nil, ErrNotWired
	}
	return c.UserByScreenNameFunc(ctx, username)
}

func (c *Client) UserTweets(ctx context.Context, username string, kind twitter.TweetKind, count int) ([]twitter.Tweet, error) {
	if c.UserTweetsFunc == nil {
		return nil, ErrNotWired
	}
	return c.UserTweetsFunc(ctx, username, kind, count)
}

func (c *Client) HomeTimeline(ctx context.Context, count int) ([]twitter.Tweet, error) {
	if c.HomeTimelineFunc == nil {
		return nil, ErrNotWired
	}
	return c.HomeTimelineFunc(ctx, count)
}

func (c *Client) FollowingTimeline(ctx context.Context, count int) ([]twitter.Tweet, error) {
	if c.FollowingTimelineFunc == nil {
		return nil, ErrNotWired
	}
	return c.FollowingTimelineFunc(ctx, count)
}

func (c *Client) CreateTweet(ctx context.Context, draft twitter.TweetDraft) (*twitter.Tweet, error) {
	if c.CreateTweetFunc == nil {
		return nil, ErrNotWired
	}
	return c.CreateTweetFunc(ctx, draft)
}

func (c *Client) LikeTweet(ctx context.Context, tweetID string) error {
	if c.LikeTweetFunc == nil {
		return ErrNotWired
	}
	return c.LikeTweetFunc(ctx, tweetID)
}

func (c *Client) Retweet(ctx context.Context, tweetID string) error {
	if c.RetweetFunc == nil {
		return ErrNotWired
	}
	return c.RetweetFunc(ctx, tweetID)
}

func (c *Client) FollowUser(ctx context.Context, userID string) error {
	if c.FollowUserFunc == nil {
		return ErrNotWired
	}
	return c.FollowUserFunc(ctx, userID)
}

func (c *Client) UnfollowUser(ctx context.Context, userID string) error {
	if c.UnfollowUserFunc == nil {
		return ErrNotWired
	}
	return c.UnfollowUserFunc(ctx, userID)
}

func (c *Client) BlockUser(ctx context.Context, userID string) error {
	if c.BlockUserFunc == nil {
		return ErrNotWired
	}
	return c.BlockUserFunc(ctx, userID)
}

func (c *Client) UnblockUser(ctx context.Context, userID string) error {
	if c.UnblockUserFunc == nil {
		return ErrNotWired
	}
	return c.UnblockUserFunc(ctx, userID)
}

func (c *Client) Followers(ctx context.Context, username string, count int) ([]twitter.User, error) {
	if c.FollowersFunc == nil {
		return nil, ErrNotWired
	}
	return c.FollowersFunc(ctx, username, count)
}

func (c *Client) Following(ctx context.Context, username string, count int) ([]twitter.User, error) {
	if c.FollowingFunc == nil {
		return nil, ErrNotWired
	}
	return c.FollowingFunc(ctx, username, count)
}

func (c *Client) SendDirectMessage(ctx context.Context, userID, text, mediaID string) (*twitter.DirectMessage, error) {
	if c.SendDirectMessageFunc == nil {
		return nil, ErrNotWired
	}
	return c.SendDirectMessageFunc(ctx, userID, text, mediaID)
}

func (c *Client) Trends(ctx context.Context, category string, count int) ([]twitter.Trend, error) {
	if c.TrendsFunc == nil {
		return nil, ErrNotWired
	}
	return c.TrendsFunc(ctx, category, count)
}
