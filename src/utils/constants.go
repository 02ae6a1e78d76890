package utils

// ShortDashDateLayout is the wire format for purchase and price dates.
const ShortDashDateLayout = "2006-01-02"

// MFAPIDateLayout is the day-first format MFAPI uses for NAV dates.
const MFAPIDateLayout = "02-01-2006"
