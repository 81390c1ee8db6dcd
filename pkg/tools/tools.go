package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("search_twitter",
		mcp.WithDescription("Search twitter with a query. Sort by 'Top' or 'Latest'"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query"),
		),
		mcp.WithString("sort_by",
			mcp.Description("Sort order: 'Top' or 'Latest'"),
			mcp.Enum("Top", "Latest"),
		),
		mcp.WithNumber("count",
			mcp.Description("Number of tweets to retrieve (default 10)"),
		),
	), s.handleSearch)

	s.mcp.AddTool(mcp.NewTool("get_user_tweets",
		mcp.WithDescription("Get tweets from a specific user's timeline."),
		mcp.WithString("username",
			mcp.Required(),
			mcp.Description("Twitter username (with or without @)"),
		),
		mcp.WithString("tweet_type",
			mcp.Description("Type of tweets to retrieve - 'Tweets', 'Replies', 'Media', or 'Likes'"),
			mcp.Enum("Tweets", "Replies", "Media", "Likes"),
		),
		mcp.WithNumber("count",
			mcp.Description("Number of tweets to retrieve (default 10)"),
		),
	), s.handleUserTweets)

	s.mcp.AddTool(mcp.NewTool("get_timeline",
		mcp.WithDescription("Get tweets from your home timeline (For You)."),
		mcp.WithNumber("count",
			mcp.Description("Number of tweets to retrieve (default 20)"),
		),
	), s.handleTimeline)

	s.mcp.AddTool(mcp.NewTool("get_latest_timeline",
		mcp.WithDescription("Get tweets from your home timeline (Following)."),
		mcp.WithNumber("count",
			mcp.Description("Number of tweets to retrieve (default 20)"),
		),
	), s.handleLatestTimeline)

	s.mcp.AddTool(mcp.NewTool("create_tweet",
		mcp.WithDescription("Creates a new tweet."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The text content of the tweet"),
		),
		mcp.WithArray("media_ids",
			mcp.Description("A list of media IDs to attach to the tweet"),
		),
		mcp.WithString("poll_uri",
			mcp.Description("The URI of a Twitter poll card to attach to the tweet"),
		),
	), s.handleCreateTweet)

	s.mcp.AddTool(mcp.NewTool("reply_to_tweet",
		mcp.WithDescription("Replies to a specific tweet."),
		mcp.WithString("tweet_id",
			mcp.Required(),
			mcp.Description("The ID of the tweet to reply to"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The text content of the reply"),
		),
		mcp.WithArray("media_ids",
			mcp.Description("A list of media IDs to attach to the reply"),
		),
	), s.handleReplyToTweet)

	s.mcp.AddTool(mcp.NewTool("like_tweet",
		mcp.WithDescription("Likes a specific tweet."),
		mcp.WithString("tweet_id",
			mcp.Required(),
			mcp.Description("The ID of the tweet to like"),
		),
	), s.handleLikeTweet)

	s.mcp.AddTool(mcp.NewTool("retweet",
		mcp.WithDescription("Retweets a specific tweet."),
		mcp.WithString("tweet_id",
			mcp.Required(),
			mcp.Description("The ID of the tweet to retweet"),
		),
	), s.handleRetweet)

	s.mcp.AddTool(mcp.NewTool("follow_user",
		mcp.WithDescription("Follows a user."),
		mcp.WithString("username",
			mcp.Required(),
			mcp.Description("The username of the user to follow (with or without @)"),
		),
	), s.handleFollowUser)

	s.mcp.AddTool(mcp.NewTool("unfollow_user",
		mcp.WithDescription("Unfollows a user."),
		mcp.WithString("username",
			mcp.Required(),
			mcp.Description("The username of the user to unfollow (with or without @)"),
		),
	), s.handleUnfollowUser)

	s.mcp.AddTool(mcp.NewTool("block_user",
		mcp.WithDescription("Blocks a user."),
		mcp.WithString("username",
			mcp.Required(),
			mcp.Description("The username of the user to block (with or without @)"),
		),
	), s.handleBlockUser)

	s.mcp.AddTool(mcp.NewTool("unblock_user",
		mcp.WithDescription("Unblocks a user."),
		mcp.WithString("username",
			mcp.Required(),
			mcp.Description("The username of the user to unblock (with or without @)"),
		),
	), s.handleUnblockUser)

	s.mcp.AddTool(mcp.NewTool("get_user_by_screen_name",
		mcp.WithDescription("Retrieves a user by their screen name."),
		mcp.WithString("username",
			mcp.Required(),
			mcp.Description("Twitter username (with or without @)"),
		),
	), s.handleUserByScreenName)

	s.mcp.AddTool(mcp.NewTool("get_user_followers",
		mcp.WithDescription("Retrieves a list of followers for a given user."),
		mcp.WithString("username",
			mcp.Required(),
			mcp.Description("Twitter username (with or without @)"),
		),
		mcp.WithNumber("count",
			mcp.Description("Number of followers to retrieve (default 20)"),
		),
	), s.handleUserFollowers)

	s.mcp.AddTool(mcp.NewTool("get_user_following",
		mcp.WithDescription("Retrieves a list of users that a given user is following."),
		mcp.WithString("username",
			mcp.Required(),
			mcp.Description("Twitter username (with or without @)"),
		),
		mcp.WithNumber("count",
			mcp.Description("Number of users to retrieve (default 20)"),
		),
	), s.handleUserFollowing)

	s.mcp.AddTool(mcp.NewTool("send_dm",
		mcp.WithDescription("Sends a direct message to a user."),
		mcp.WithString("user_id",
			mcp.Required(),
			mcp.Description("The ID of the user to whom the direct message will be sent"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The text content of the direct message"),
		),
		mcp.WithString("media_id",
			mcp.Description("The media ID associated with any media content"),
		),
	), s.handleSendDM)

	s.mcp.AddTool(mcp.NewTool("get_trends",
		mcp.WithDescription("Retrieves trending topics on Twitter. Valid categories include: 'trending', 'for-you', 'news', 'sports', 'entertainment'"),
		mcp.WithString("category",
			mcp.Description("The category of trends to retrieve (default 'trending')"),
		),
		mcp.WithNumber("count",
			mcp.Description("The number of trends to retrieve (default 20)"),
		),
	), s.handleTrends)
}
