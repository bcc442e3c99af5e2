package reddit

import "time"

const (
	defaultBaseURL      = "https://oauth.reddit.com"
	defaultAuthURL      = "https://www.reddit.com"
	defaultUserAgent    = "nba-postgame-bot/1.0"
	defaultListingLimit = 100
	defaultHTTPTimeout  = 15 * time.Second

	// tokenSlack renews the cached token a little before it actually expires.
	tokenSlack = 30 * time.Second
)

const providerName = "reddit"

// threadTitleMarker filters the /new listing down to post-game threads.
const threadTitleMarker = "post game thread"
