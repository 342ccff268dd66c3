package dto

import "github.com/spec-kit/helpdesk/internal/navigation"

// NavigationResponse lists the screens reachable from the current one.
type NavigationResponse struct {
	Current navigation.Screen   `json:"atual"`
	Parent  navigation.Screen   `json:"anterior,omitempty"`
	Screens []navigation.Screen `json:"telas"`
}
