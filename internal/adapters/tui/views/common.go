package views

// View switching messages shared between views and the app model.

// SwitchToQueueMsg switches to the review queue view
type SwitchToQueueMsg struct{}

// SwitchToProceduresMsg switches to the procedure browser
type SwitchToProceduresMsg struct{}

// SwitchToHelpMsg switches to the help view
type SwitchToHelpMsg struct{}
