package interfaces

import (
	"league-history/services"
)

// Interface compliance checks - these will fail to compile if services don't implement interfaces
var (
	_ LeagueServiceInterface  = (*services.LeagueService)(nil)
	_ ChartServiceInterface   = (*services.ChartService)(nil)
	_ AdminAuthInterface      = (*services.AdminAuthService)(nil)
	_ ImportServiceInterface  = (*services.LeagueImportService)(nil)
	_ BallotNotifierInterface = (*services.BallotMailer)(nil)

	_ services.Loader       = (*services.LeagueLoader)(nil)
	_ services.LeagueSource = (*services.FileSource)(nil)
	_ services.LeagueSource = (*services.HTTPSource)(nil)
	_ services.LeagueSource = (*services.MongoSource)(nil)
)
