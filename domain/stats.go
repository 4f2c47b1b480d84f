package domain

// Stats is the admin snapshot rendered by the stats command.
type Stats struct {
	BotName          string
	AutoResponder    bool
	PairedSessions   int
	EngagedAddresses int
	Admin            Address
}
