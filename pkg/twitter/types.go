package twitter

import "time"

// Tweet is a single tweet as surfaced to tools.
type Tweet struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt string    `json:"created_at"`
	Timestamp time.Time `json:"timestamp,omitempty"`
	Likes     int       `json:"likes,omitempty"`
	Retweets  int       `json:"retweets,omitempty"`
}

// User is a Twitter account profile.
type User struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ScreenName      string `json:"screen_name"`
	Description     string `json:"description"`
	Verified        bool   `json:"verified"`
	FollowersCount  int    `json:"followers_count"`
	FollowingCount  int    `json:"following_count"`
	Location        string `json:"location"`
	CreatedAt       string `json:"created_at"`
	ProfileImageURL string `json:"profile_image_url"`
	BannerURL       string `json:"profile_banner_url"`
}

// Trend is a trending topic.
type Trend struct {
	Name        string `json:"name"`
	TweetsCount int    `json:"tweets_count"`
}

// DirectMessage is a sent direct message.
type DirectMessage struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// TweetDraft holds the content of a tweet to be created. ReplyTo, MediaIDs
// and PollURI are optional.
type TweetDraft struct {
	Text     string
	MediaIDs []string
	PollURI  string
	ReplyTo  string
}

// Credentials are the login values read from the environment. They are used
// once, at session creation, and never persisted.
type Credentials struct {
	Username string
	Email    string
	Password string
}
