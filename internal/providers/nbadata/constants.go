package nbadata

import "time"

const (
	defaultBaseURL     = "https://data.nba.net/prod/v1"
	defaultHTTPTimeout = 10 * time.Second
)
