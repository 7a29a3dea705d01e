package model

import "BalaghAPI/internal/constant"

type NavItem struct {
	Label     string `json:"label"`
	Path      string `json:"path"`
	Protected bool   `json:"protected"`
}

type ShellResponse struct {
	Navigation        []NavItem                   `json:"navigation"`
	EmergencyContacts []constant.EmergencyContact `json:"emergency_contacts"`
	FooterLinks       []NavItem                   `json:"footer_links"`
	Categories        []constant.Category         `json:"categories"`
	Priorities        []constant.Priority         `json:"priorities"`
	Regions           []string                    `json:"regions"`
	User              *UserDTO                    `json:"user,omitempty"`
}

type HomeResponse struct {
	TotalReports    int      `json:"total_reports"`
	ResolvedReports int      `json:"resolved_reports"`
	RecentReports   []Report `json:"recent_reports"`
}
