package twitter

import (
	"fmt"
	"strings"
)

// FormatTweets renders tweets as a markdown list, one block per tweet,
// separated by blank lines.
func FormatTweets(tweets []Tweet) string {
	blocks := make([]string, 0, len(tweets))
	for _, t := range tweets {
		blocks = append(blocks, fmt.Sprintf("**@%s** - %s\n%s", t.Username, t.CreatedAt, t.Text))
	}
	return strings.Join(blocks, "\n\n")
}

// FormatUser renders a full profile info block.
func FormatUser(u *User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %s\n", u.ID)
	fmt.Fprintf(&b, "Name: %s\n", u.Name)
	fmt.Fprintf(&b, "Screen Name: %s\n", u.ScreenName)
	fmt.Fprintf(&b, "Description: %s\n", u.Description)
	fmt.Fprintf(&b, "Verified: %t\n", u.Verified)
	fmt.Fprintf(&b, "Followers Count: %d\n", u.FollowersCount)
	fmt.Fprintf(&b, "Following Count: %d\n", u.FollowingCount)
	fmt.Fprintf(&b, "Location: %s\n", u.Location)
	fmt.Fprintf(&b, "Created At: %s\n", u.CreatedAt)
	fmt.Fprintf(&b, "Profile Image URL: %s\n", u.ProfileImageURL)
	fmt.Fprintf(&b, "Profile Banner URL: %s\n", u.BannerURL)
	return b.String()
}

// FormatUserList renders users as indented "@name (ID: n)" lines.
func FormatUserList(users []User) string {
	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, fmt.Sprintf("  - @%s (ID: %s)", u.ScreenName, u.ID))
	}
	return strings.Join(lines, "\n")
}

// FormatTrends renders trends as indented "name (Tweets: n)" lines. The
// volume is omitted when the source did not report one, rather than printing
// a misleading zero.
func FormatTrends(trends []Trend) string {
	lines := make([]string, 0, len(trends))
	for _, t := range trends {
		if t.TweetsCount > 0 {
			lines = append(lines, fmt.Sprintf("  - %s (Tweets: %d)", t.Name, t.TweetsCount))
		} else {
			lines = append(lines, fmt.Sprintf("  - %s", t.Name))
		}
	}
	return strings.Join(lines, "\n")
}
