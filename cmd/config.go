package cmd

// Config carries every runtime setting the service reads from the
// environment at startup.
type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	LedgerAnchorSchedule string
}
