package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harun/mcp-twitter/pkg/twitter"
)

// cleanUsername strips any leading "@" so "@alice" and "alice" resolve
// identically.
func cleanUsername(username string) string {
	return strings.TrimLeft(username, "@")
}

func notFound(username string) *mcp.CallToolResult {
	return mcp.NewToolResultText(fmt.Sprintf("Could not find user %s", username))
}

func (s *Server) handleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return failure("search tweets", err), nil
	}
	sort := twitter.SearchSort(req.GetString("sort_by", string(twitter.SearchTop)))
	count := req.GetInt("count", 10)

	client, err := s.sessions.Acquire(ctx)
	if err != nil {
		return failure("search tweets", err), nil
	}

	tweets, err := client.SearchTweets(ctx, query, sort, count)
	if err != nil {
		return failure("search tweets", err), nil
	}
	return mcp.NewToolResultText(twitter.FormatTweets(tweets)), nil
}

func (s *Server) handleUserTweets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username, err := req.RequireString("username")
	if err != nil {
		return failure("get user tweets", err), nil
	}
	kind := twitter.TweetKind(req.GetString("tweet_type", string(twitter.KindTweets)))
	count := req.GetInt("count", 10)

	client, err := s.sessions.Acquire(ctx)
	if err != nil {
		return failure("get user tweets", err), nil
	}

	username = cleanUsername(username)
	user, err := client.UserByScreenName(ctx, username)
	if err != nil {
		return failure("get user tweets", err), nil
	}
	if user == nil {
		return notFound(username), nil
	}

	tweets, err := client.UserTweets(ctx, user.ScreenName, kind, count)
	if err != nil {
		return failure("get user tweets", err), nil
	}
	return mcp.NewToolResultText(twitter.FormatTweets(tweets)), nil
}

func (s *Server) handleTimeline(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	count := req.GetInt("count", 20)

	client, err := s.sessions.Acquire(ctx)
	if err != nil {
		return failure("get timeline", err), nil
	}

	tweets, err := client.HomeTimeline(ctx, count)
	if err != nil {
		return failure("get timeline", err), nil
	}
	return mcp.NewToolResultText(twitter.FormatTweets(tweets)), nil
}

func (s *Server) handleLatestTimeline(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	count := req.GetInt("count", 20)

	client, err := s.sessions.Acquire(ctx)
	if err != nil {
		return failure("get latest timeline", err), nil
	}

	tweets, err := client.FollowingTimeline(ctx, count)
	if err != nil {
		return failure("get latest timeline", err), nil
	}
	return mcp.NewToolResultText(twitter.FormatTweets(tweets)), nil
}

func (s *Server) handleCreateTweet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return failure("create tweet", err), nil
	}

	client, err := s.sessions.Acquire(ctx)
	if err != nil {
		return failure("create tweet", err), nil
	}

	tweet, err := client.CreateTweet(ctx, twitter.TweetDraft{
		Text:     text,
		MediaIDs: req.GetStringSlice("media_ids", nil),
		PollURI:  req.GetString("poll_uri", ""),
	})
	if err != nil {
		return failure("create tweet", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Tweet created successfully: %s", tweet.ID)), nil
}

func (s *Server) handleReplyToTweet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tweetID, err := req.RequireString("tweet_id")
	if err != nil {
		return failure("reply to tweet", err), nil
	}
	text, err := req.RequireString("text")
	if err != nil {
		return failure("reply to tweet", err), nil
	}

	client, err := s.sessions.Acquire(ctx)
	if err != nil {
		return failure("reply to tweet", err), nil
	}

	tweet, err := client.CreateTweet(ctx, twitter.TweetDraft{
		Text:     text,
		MediaIDs: req.GetStringSlice("media_ids", nil),
		ReplyTo:  tweetID,
	})
	if err != nil {
		return failure("reply to tweet", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Reply sent successfully: %s", tweet.ID)), nil
}

func (s *Server) handleLikeTweet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tweetID, err := req.RequireString("tweet_id")
	if err != nil {
		return failure("like tweet", err), nil
	}

	client, err := s.sessions.Acquire(ctx)
	if err != nil {
		return failure("like tweet", err), nil
	}

	if err := client.LikeTweet(ctx, tweetID); err != nil {
		return failure("like tweet", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Tweet %s liked successfully.", tweetID)), nil
}

func (s *Server) handleRetweet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tweetID, err := req.RequireString("tweet_id")
	if err != nil {
		return failure("retweet", err), nil
	}

	client, err := s.sessions.Acquire(ctx)
	if err != nil {
		return failure("retweet", err), nil
	}

	if err := client.Retweet(ctx, tweetID); err != nil {
		return failure("retweet", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Tweet %s retweeted successfully.", tweetID)), nil
}

func (s *Server) handleFollowUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username, err := req.RequireString("username")
	if err != nil {
		return failure("follow user", err), nil
	}

	client, err := s.sessions.Acquire(ctx)
	if err != nil {
		return failure("follow user", err), nil
	}

	username = cleanUsername(username)
	user, err := client.UserByScreenName(ctx, username)
	if err != nil {
		return failure("follow user", err), nil
	}
	if user == nil {
		return notFound(username), nil
	}

	if err := client.FollowUser(ctx, user.ID); err != nil {
		return failure("follow user", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Successfully followed user %s", username)), nil
}

func (s *Server) handleUnfollowUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username, err := req.RequireString("username")
	if err != nil {
		return failure("unfollow user", err), nil
	}

	client, err := s.sessions.Acquire(ctx)
	if err != nil {
		return failure("unfollow user", err), nil
	}

	username = cleanUsername(username)
	user, err := client.UserByScreenName(ctx, username)
	if err != nil {
		return failure("unfollow user", err), nil
	}
	if user == nil {
		return notFound(username), nil
	}

	if err := client.UnfollowUser(ctx, user.ID); err != nil {
		return failure("unfollow user", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Successfully unfollowed user %s", username)), nil
}

func (s *Server) handleBlockUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username, err := req.RequireString("username")
	if err != nil {
		return failure("block user", err), nil
	}

	client, err := s.sessions.Acquire(ctx)
	if err != nil {
		return failure("block user", err), nil
	}

	username = cleanUsername(username)
	user, err := client.UserByScreenName(ctx, username)
	if err != nil {
		return failure("block user", err), nil
	}
	if user == nil {
		return notFound(username), nil
	}

	if err := client.BlockUser(ctx, user.ID); err != nil {
		return failure("block user", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Successfully blocked user %s", username)), nil
}

func (s *Server) handleUnblockUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username, err := req.RequireString("username")
	if err != nil {
		return failure("unblock user", err), nil
	}

	client, err := s.sessions.Acquire(ctx)
	if err != nil {
		return failure("unblock user", err), nil
	}

	username = cleanUsername(username)
	user, err := client.UserByScreenName(ctx, username)
	if err != nil {
		return failure("unblock user", err), nil
	}
	if user == nil {
		return notFound(username), nil
	}

	if err := client.UnblockUser(ctx, user.ID); err != nil {
		return failure("unblock user", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Successfully unblocked user %s", username)), nil
}

func (s *Server) handleUserByScreenName(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username, err := req.RequireString("username")
	if err != nil {
		return failure("retrieve user by screen name", err), nil
	}

	client, err := s.sessions.Acquire(ctx)
	if err != nil {
		return failure("retrieve user by screen name", err), nil
	}

	username = cleanUsername(username)
	user, err := client.UserByScreenName(ctx, username)
	if err != nil {
		return failure("retrieve user by screen name", err), nil
	}
	if user == nil {
		return notFound(username), nil
	}
	return mcp.NewToolResultText(twitter.FormatUser(user)), nil
}

func (s *Server) handleUserFollowers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username, err := req.RequireString("username")
	if err != nil {
		return failure("get followers", err), nil
	}
	count := req.GetInt("count", 20)
	username = cleanUsername(username)
	action := fmt.Sprintf("get followers for user %s", username)

	client, err := s.sessions.Acquire(ctx)
	if err != nil {
		return failure(action, err), nil
	}

	user, err := client.UserByScreenName(ctx, username)
	if err != nil {
		return failure(action, err), nil
	}
	if user == nil {
		return notFound(username), nil
	}

	followers, err := client.Followers(ctx, user.ScreenName, count)
	if err != nil {
		return failure(action, err), nil
	}
	text := fmt.Sprintf("Followers of %s:\n%s", username, twitter.FormatUserList(followers))
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleUserFollowing(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username, err := req.RequireString("username")
	if err != nil {
		return failure("get following list", err), nil
	}
	count := req.GetInt("count", 20)
	username = cleanUsername(username)
	action := fmt.Sprintf("get following list for user %s", username)

	client, err := s.sessions.Acquire(ctx)
	if err != nil {
		return failure(action, err), nil
	}

	user, err := client.UserByScreenName(ctx, username)
	if err != nil {
		return failure(action, err), nil
	}
	if user == nil {
		return notFound(username), nil
	}

	following, err := client.Following(ctx, user.ScreenName, count)
	if err != nil {
		return failure(action, err), nil
	}
	text := fmt.Sprintf("Users followed by %s:\n%s", username, twitter.FormatUserList(following))
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleSendDM(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := req.RequireString("user_id")
	if err != nil {
		return failure("send DM", err), nil
	}
	text, err := req.RequireString("text")
	if err != nil {
		return failure("send DM", err), nil
	}

	client, err := s.sessions.Acquire(ctx)
	if err != nil {
		return failure("send DM", err), nil
	}

	message, err := client.SendDirectMessage(ctx, userID, text, req.GetString("media_id", ""))
	if err != nil {
		return failure("send DM", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Direct message sent successfully: %s", message.ID)), nil
}

func (s *Server) handleTrends(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := req.GetString("category", "trending")
	count := req.GetInt("count", 20)

	client, err := s.sessions.Acquire(ctx)
	if err != nil {
		return failure("get trends", err), nil
	}

	trends, err := client.Trends(ctx, category, count)
	if err != nil {
		return failure("get trends", err), nil
	}
	text := fmt.Sprintf("Trends in %s:\n%s", category, twitter.FormatTrends(trends))
	return mcp.NewToolResultText(text), nil
}
