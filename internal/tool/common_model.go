package tool

// DisplayNameResponse reports the display name written to Slack.
type DisplayNameResponse struct {
	DisplayName string `json:"display_name" jsonschema:"the display name now set on the profile"`
}
