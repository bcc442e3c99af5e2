package metrics

// Attribute keys shared by the OTel instruments.
const (
	AttrProvider = "provider"
	AttrTheme    = "theme"
	AttrStatus   = "status"
	AttrReason   = "reason"
	AttrStage    = "stage"
)
