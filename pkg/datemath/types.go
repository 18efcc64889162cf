package datemath

// TrackerLayouts are the date layouts project trackers emit, tried in order.
// Zoho uses month-first dates.
var TrackerLayouts = []string{"01-02-2006", "2006-01-02", "02/01/2006"}
