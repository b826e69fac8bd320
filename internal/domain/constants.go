package domain

// Guest count limits per entry point.
// The caps intentionally differ: the drawer routes groups over the standard
// cap to the private-tour flow, the sidebar allows up to 20 before routing,
// and the private-tour form itself accepts up to 30.
const (
	MinGuests                = 1
	StandardGroupCap         = 6  // bigger groups are routed to a private tour
	SidebarGuestCap          = 20 // sidebar guest selector hard ceiling
	PrivateTourGuestCap      = 30 // private-tour request form hard ceiling
	DefaultPrivateTourGuests = 4
)

// Private tour pricing
const (
	PrivateTourFlatTotal   = 249.0 // flat total for groups up to PrivateTourPriceTier
	PrivateTourPriceTier   = 10
	PrivateTourPerPersonXL = 24.95 // per-person price above the tier
)

// Time format constants
const (
	DateFormat        = "2006-01-02"      // YYYY-MM-DD, wire format
	TimeFormat        = "15:04"           // HH:MM
	DisplayDateFormat = "Monday, 2 Jan 2006"
)

// DefaultCancellationReason подставляется, если причина отмены не указана
const DefaultCancellationReason = "Customer requested cancellation"
