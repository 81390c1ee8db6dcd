// Package twitter defines the client capability set the tool layer is built
// against, the data model it exchanges, and the plain-text rendering used in
// tool results. The real network client lives in pkg/scraper; tests use the
// function-field fake in pkg/twitter/twittertest.
package twitter

import (
	"context"
	"errors"
)

// SearchSort selects the search result ordering.
type SearchSort string

const (
	SearchTop    SearchSort = "Top"
	SearchLatest SearchSort = "Latest"
)

// TweetKind selects which of a user's timelines to read.
type TweetKind string

const (
	KindTweets  TweetKind = "Tweets"
	KindReplies TweetKind = "Replies"
	KindMedia   TweetKind = "Media"
	KindLikes   TweetKind = "Likes"
)

// ErrUnsupported is returned by a client for operations its backing library
// has no endpoint for. It surfaces to the caller as a normal operation
// failure.
var ErrUnsupported = errors.New("operation not supported by this client")

// Client is the full capability set a tool invocation may use. One Client is
// valid for the lifetime of a single tool invocation; it is not shared or
// cached across invocations.
type Client interface {
	// RestoreSession loads a previously exported session blob. The blob is
	// opaque to callers; no validity check is performed.
	RestoreSession(data []byte) error
	// ExportSession serializes the current session state for persistence.
	ExportSession() ([]byte, error)
	// Login performs a credential login.
	Login(ctx context.Context, creds Credentials) error

	SearchTweets(ctx context.Context, query string, sort SearchSort, count int) ([]Tweet, error)
	UserByScreenName(ctx context.Context, username string) (*User, error)
	UserTweets(ctx context.Context, username string, kind TweetKind, count int) ([]Tweet, error)
	HomeTimeline(ctx context.Context, count int) ([]Tweet, error)
	FollowingTimeline(ctx context.Context, count int) ([]Tweet, error)
	CreateTweet(ctx context.Context, draft TweetDraft) (*Tweet, error)
	LikeTweet(ctx context.Context, tweetID string) error
	Retweet(ctx context.Context, tweetID string) error
	FollowUser(ctx context.Context, userID string) error
	UnfollowUser(ctx context.Context, userID string) error
	BlockUser(ctx context.Context, userID string) error
	UnblockUser(ctx context.Context, userID string) error
	Followers(ctx context.Context, username string, count int) ([]User, error)
	Following(ctx context.Context, username string, count int) ([]User, error)
	SendDirectMessage(ctx context.Context, userID, text, mediaID string) (*DirectMessage, error)
	Trends(ctx context.Context, category string, count int) ([]Trend, error)
}
