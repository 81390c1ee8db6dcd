package tools

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harun/mcp-twitter/pkg/session"
	"github.com/harun/mcp-twitter/pkg/twitter"
	"github.com/harun/mcp-twitter/pkg/twitter/twittertest"
)

// newTestServer builds a Server whose session provider restores a pre-seeded
// artifact, so handlers get the fake client without a login round-trip.
func newTestServer(t *testing.T, client *twittertest.Client) *Server {
	t.Helper()

	cookiesPath := filepath.Join(t.TempDir(), "cookies.json")
	require.NoError(t, os.WriteFile(cookiesPath, []byte(`[]`), 0600))

	provider := session.NewProvider(twitter.Credentials{}, "", cookiesPath, func(string) twitter.Client {
		return client
	})
	return NewServer(provider, "test")
}

func callReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()

	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestHandleSearch(t *testing.T) {
	t.Run("formats results", func(t *testing.T) {
		client := &twittertest.Client{
			SearchTweetsFunc: func(ctx context.Context, query string, sort twitter.SearchSort, count int) ([]twitter.Tweet, error) {
				assert.Equal(t, "golang", query)
				assert.Equal(t, twitter.SearchLatest, sort)
				assert.Equal(t, 5, count)
				return []twitter.Tweet{
					{Username: "a", CreatedAt: "T1", Text: "hi"},
					{Username: "b", CreatedAt: "T2", Text: "yo"},
				}, nil
			},
		}
		srv := newTestServer(t, client)

		res, err := srv.handleSearch(context.Background(), callReq(map[string]any{
			"query":   "golang",
			"sort_by": "Latest",
			"count":   5,
		}))
		require.NoError(t, err)
		assert.Equal(t, "**@a** - T1\nhi\n\n**@b** - T2\nyo", resultText(t, res))
	})

	t.Run("defaults to top and 10", func(t *testing.T) {
		client := &twittertest.Client{
			SearchTweetsFunc: func(ctx context.Context, query string, sort twitter.SearchSort, count int) ([]twitter.Tweet, error) {
				assert.Equal(t, twitter.SearchTop, sort)
				assert.Equal(t, 10, count)
				return nil, nil
			},
		}
		srv := newTestServer(t, client)

		res, err := srv.handleSearch(context.Background(), callReq(map[string]any{"query": "golang"}))
		require.NoError(t, err)
		assert.Equal(t, "", resultText(t, res))
	})

	t.Run("client failure becomes text result", func(t *testing.T) {
		client := &twittertest.Client{
			SearchTweetsFunc: func(ctx context.Context, query string, sort twitter.SearchSort, count int) ([]twitter.Tweet, error) {
				return nil, errors.New("rate limited")
			},
		}
		srv := newTestServer(t, client)

		res, err := srv.handleSearch(context.Background(), callReq(map[string]any{"query": "golang"}))
		require.NoError(t, err)
		assert.Equal(t, "Failed to search tweets: rate limited", resultText(t, res))
	})

	t.Run("missing query becomes text result", func(t *testing.T) {
		srv := newTestServer(t, &twittertest.Client{})

		res, err := srv.handleSearch(context.Background(), callReq(map[string]any{}))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(resultText(t, res), "Failed to search tweets: "))
	})
}

func TestHandleUserTweets(t *testing.T) {
	t.Run("resolves username then fetches", func(t *testing.T) {
		client := &twittertest.Client{
			UserByScreenNameFunc: func(ctx context.Context, username string) (*twitter.User, error) {
				assert.Equal(t, "alice", username)
				return &twitter.User{ID: "42", ScreenName: "alice"}, nil
			},
			UserTweetsFunc: func(ctx context.Context, username string, kind twitter.TweetKind, count int) ([]twitter.Tweet, error) {
				assert.Equal(t, "alice", username)
				assert.Equal(t, twitter.KindReplies, kind)
				return []twitter.Tweet{{Username: "alice", CreatedAt: "T", Text: "re"}}, nil
			},
		}
		srv := newTestServer(t, client)

		res, err := srv.handleUserTweets(context.Background(), callReq(map[string]any{
			"username":   "@alice",
			"tweet_type": "Replies",
		}))
		require.NoError(t, err)
		assert.Equal(t, "**@alice** - T\nre", resultText(t, res))
	})

	t.Run("unknown user short-circuits", func(t *testing.T) {
		var fetched atomic.Bool
		client := &twittertest.Client{
			UserByScreenNameFunc: func(ctx context.Context, username string) (*twitter.User, error) {
				return nil, nil
			},
			UserTweetsFunc: func(ctx context.Context, username string, kind twitter.TweetKind, count int) ([]twitter.Tweet, error) {
				fetched.Store(true)
				return nil, nil
			},
		}
		srv := newTestServer(t, client)

		res, err := srv.handleUserTweets(context.Background(), callReq(map[string]any{"username": "ghost"}))
		require.NoError(t, err)
		assert.Equal(t, "Could not find user ghost", resultText(t, res))
		assert.False(t, fetched.Load())
	})
}

func TestHandleTimelines(t *testing.T) {
	client := &twittertest.Client{
		HomeTimelineFunc: func(ctx context.Context, count int) ([]twitter.Tweet, error) {
			assert.Equal(t, 20, count)
			return []twitter.Tweet{{Username: "x", CreatedAt: "T", Text: "home"}}, nil
		},
		FollowingTimelineFunc: func(ctx context.Context, count int) ([]twitter.Tweet, error) {
			assert.Equal(t, 3, count)
			return []twitter.Tweet{{Username: "y", CreatedAt: "T", Text: "latest"}}, nil
		},
	}
	srv := newTestServer(t, client)

	res, err := srv.handleTimeline(context.Background(), callReq(map[string]any{}))
	require.NoError(t, err)
	assert.Equal(t, "**@x** - T\nhome", resultText(t, res))

	res, err = srv.handleLatestTimeline(context.Background(), callReq(map[string]any{"count": 3}))
	require.NoError(t, err)
	assert.Equal(t, "**@y** - T\nlatest", resultText(t, res))
}

func TestHandleCreateTweet(t *testing.T) {
	client := &twittertest.Client{
		CreateTweetFunc: func(ctx context.Context, draft twitter.TweetDraft) (*twitter.Tweet, error) {
			assert.Equal(t, "hello", draft.Text)
			assert.Equal(t, []string{"m1", "m2"}, draft.MediaIDs)
			assert.Equal(t, "card://poll", draft.PollURI)
			assert.Empty(t, draft.ReplyTo)
			return &twitter.Tweet{ID: "99"}, nil
		},
	}
	srv := newTestServer(t, client)

	res, err := srv.handleCreateTweet(context.Background(), callReq(map[string]any{
		"text":      "hello",
		"media_ids": []any{"m1", "m2"},
		"poll_uri":  "card://poll",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Tweet created successfully: 99", resultText(t, res))
}

func TestHandleReplyToTweet(t *testing.T) {
	client := &twittertest.Client{
		CreateTweetFunc: func(ctx context.Context, draft twitter.TweetDraft) (*twitter.Tweet, error) {
			assert.Equal(t, "100", draft.ReplyTo)
			assert.Equal(t, "agreed", draft.Text)
			return &twitter.Tweet{ID: "101"}, nil
		},
	}
	srv := newTestServer(t, client)

	res, err := srv.handleReplyToTweet(context.Background(), callReq(map[string]any{
		"tweet_id": "100",
		"text":     "agreed",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Reply sent successfully: 101", resultText(t, res))
}

func TestHandleTweetActions(t *testing.T) {
	client := &twittertest.Client{
		LikeTweetFunc: func(ctx context.Context, tweetID string) error {
			assert.Equal(t, "7", tweetID)
			return nil
		},
		RetweetFunc: func(ctx context.Context, tweetID string) error {
			assert.Equal(t, "7", tweetID)
			return nil
		},
	}
	srv := newTestServer(t, client)

	res, err := srv.handleLikeTweet(context.Background(), callReq(map[string]any{"tweet_id": "7"}))
	require.NoError(t, err)
	assert.Equal(t, "Tweet 7 liked successfully.", resultText(t, res))

	res, err = srv.handleRetweet(context.Background(), callReq(map[string]any{"tweet_id": "7"}))
	require.NoError(t, err)
	assert.Equal(t, "Tweet 7 retweeted successfully.", resultText(t, res))
}

func TestHandleRelationshipActions(t *testing.T) {
	type action struct {
		name    string
		handler func(*Server) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
		want    string
	}
	actions := []action{
		{"follow", func(s *Server) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return s.handleFollowUser
		}, "Successfully followed user alice"},
		{"unfollow", func(s *Server) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return s.handleUnfollowUser
		}, "Successfully unfollowed user alice"},
		{"block", func(s *Server) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return s.handleBlockUser
		}, "Successfully blocked user alice"},
		{"unblock", func(s *Server) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return s.handleUnblockUser
		}, "Successfully unblocked user alice"},
	}

	for _, tc := range actions {
		t.Run(tc.name, func(t *testing.T) {
			var gotID string
			record := func(ctx context.Context, userID string) error {
				gotID = userID
				return nil
			}
			client := &twittertest.Client{
				UserByScreenNameFunc: func(ctx context.Context, username string) (*twitter.User, error) {
					assert.Equal(t, "alice", username)
					return &twitter.User{ID: "42", ScreenName: "alice"}, nil
				},
				FollowUserFunc:   record,
				UnfollowUserFunc: record,
				BlockUserFunc:    record,
				UnblockUserFunc:  record,
			}
			srv := newTestServer(t, client)

			res, err := tc.handler(srv)(context.Background(), callReq(map[string]any{"username": "@alice"}))
			require.NoError(t, err)
			assert.Equal(t, tc.want, resultText(t, res))
			assert.Equal(t, "42", gotID)
		})
	}
}

func TestHandleUserByScreenName(t *testing.T) {
	t.Run("renders profile", func(t *testing.T) {
		client := &twittertest.Client{
			UserByScreenNameFunc: func(ctx context.Context, username string) (*twitter.User, error) {
				return &twitter.User{ID: "42", Name: "Alice", ScreenName: "alice"}, nil
			},
		}
		srv := newTestServer(t, client)

		res, err := srv.handleUserByScreenName(context.Background(), callReq(map[string]any{"username": "alice"}))
		require.NoError(t, err)
		text := resultText(t, res)
		assert.Contains(t, text, "ID: 42")
		assert.Contains(t, text, "Screen Name: alice")
	})

	t.Run("unknown user", func(t *testing.T) {
		client := &twittertest.Client{
			UserByScreenNameFunc: func(ctx context.Context, username string) (*twitter.User, error) {
				return nil, nil
			},
		}
		srv := newTestServer(t, client)

		res, err := srv.handleUserByScreenName(context.Background(), callReq(map[string]any{"username": "@ghost"}))
		require.NoError(t, err)
		assert.Equal(t, "Could not find user ghost", resultText(t, res))
	})
}

func TestHandleUserLists(t *testing.T) {
	client := &twittertest.Client{
		UserByScreenNameFunc: func(ctx context.Context, username string) (*twitter.User, error) {
			return &twitter.User{ID: "42", ScreenName: "alice"}, nil
		},
		FollowersFunc: func(ctx context.Context, username string, count int) ([]twitter.User, error) {
			assert.Equal(t, "alice", username)
			return []twitter.User{{ID: "1", ScreenName: "Bob"}}, nil
		},
		FollowingFunc: func(ctx context.Context, username string, count int) ([]twitter.User, error) {
			assert.Equal(t, "alice", username)
			return []twitter.User{{ID: "2", ScreenName: "Carol"}}, nil
		},
	}
	srv := newTestServer(t, client)

	res, err := srv.handleUserFollowers(context.Background(), callReq(map[string]any{"username": "alice"}))
	require.NoError(t, err)
	assert.Equal(t, "Followers of alice:\n  - @Bob (ID: 1)", resultText(t, res))

	res, err = srv.handleUserFollowing(context.Background(), callReq(map[string]any{"username": "alice"}))
	require.NoError(t, err)
	assert.Equal(t, "Users followed by alice:\n  - @Carol (ID: 2)", resultText(t, res))
}

func TestHandleSendDM(t *testing.T) {
	client := &twittertest.Client{
		SendDirectMessageFunc: func(ctx context.Context, userID, text, mediaID string) (*twitter.DirectMessage, error) {
			assert.Equal(t, "42", userID)
			assert.Equal(t, "hey", text)
			assert.Equal(t, "m1", mediaID)
			return &twitter.DirectMessage{ID: "dm-1", Text: text}, nil
		},
	}
	srv := newTestServer(t, client)

	res, err := srv.handleSendDM(context.Background(), callReq(map[string]any{
		"user_id":  "42",
		"text":     "hey",
		"media_id": "m1",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Direct message sent successfully: dm-1", resultText(t, res))
}

func TestHandleTrends(t *testing.T) {
	client := &twittertest.Client{
		TrendsFunc: func(ctx context.Context, category string, count int) ([]twitter.Trend, error) {
			assert.Equal(t, "news", category)
			assert.Equal(t, 20, count)
			return []twitter.Trend{{Name: "#go", TweetsCount: 12}}, nil
		},
	}
	srv := newTestServer(t, client)

	res, err := srv.handleTrends(context.Background(), callReq(map[string]any{"category": "news"}))
	require.NoError(t, err)
	assert.Equal(t, "Trends in news:\n  - #go (Tweets: 12)", resultText(t, res))
}

func TestHandlerAuthFailure(t *testing.T) {
	// No artifact on disk and a failing login: the auth error surfaces as a
	// normal tool result, not a protocol error.
	client := &twittertest.Client{
		LoginFunc: func(ctx context.Context, creds twitter.Credentials) error {
			return errors.New("bad credentials")
		},
	}
	cookiesPath := filepath.Join(t.TempDir(), "cookies.json")
	provider := session.NewProvider(twitter.Credentials{}, "", cookiesPath, func(string) twitter.Client {
		return client
	})
	srv := NewServer(provider, "test")

	res, err := srv.handleTimeline(context.Background(), callReq(map[string]any{}))
	require.NoError(t, err)
	text := resultText(t, res)
	assert.True(t, strings.HasPrefix(text, "Failed to get timeline: "))
	assert.Contains(t, text, "bad credentials")
}

func TestFailureTemplate(t *testing.T) {
	res := failure("do the thing", errors.New("boom"))
	assert.Equal(t, "Failed to do the thing: boom", resultText(t, res))
}
