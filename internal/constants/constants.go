package constants

import "time"

const (
	// Product Hunt GraphQL v2 endpoint.
	PHEndpoint = "https://api.producthunt.com/v2/api/graphql"

	PageSize     = 20
	FetchTimeout = 45 * time.Second
)

const (
	StartToday = "<!-- START:PH_TODAY -->"
	EndToday   = "<!-- END:PH_TODAY -->"

	StartArchive = "<!-- START:ARCHIVE -->"
	EndArchive   = "<!-- END:ARCHIVE -->"
)

const (
	DefaultTimezone   = "Europe/Helsinki"
	DefaultTopN       = 10
	DefaultReadmePath = "README.md"
	DefaultDBPath     = "producthunt.db"

	ReportExt = ".md"
)

const (
	DBMaxOpenConns    = 1
	DBMaxIdleConns    = 1
	DBConnMaxLifetime = 1 * time.Hour
	DBTimeout         = 5 * time.Second
)

const (
	ShutdownTimeout = 5 * time.Second
)
