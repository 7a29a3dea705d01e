package service

import (
	"BalaghAPI/internal/constant"
	"BalaghAPI/internal/model"
)

type ShellService struct{}

func NewShellService() *ShellService {
	return &ShellService{}
}

// Shell describes the navigation chrome. Protected entries require a session.
func (s *ShellService) Shell(sess *model.Session) model.ShellResponse {
	resp := model.ShellResponse{
		Navigation: []model.NavItem{
			{Label: "home", Path: "/"},
			{Label: "report", Path: "/report", Protected: true},
			{Label: "reports", Path: "/reports"},
			{Label: "dashboard", Path: "/dashboard", Protected: true},
			{Label: "auth", Path: "/auth"},
		},
		EmergencyContacts: constant.EmergencyContacts,
		FooterLinks: []model.NavItem{
			{Label: "terms", Path: "/terms"},
			{Label: "privacy", Path: "/privacy"},
			{Label: "contact", Path: "/contact"},
		},
		Categories: constant.Categories,
		Priorities: constant.Priorities,
		Regions:    constant.Regions,
	}
	if sess != nil {
		user := sess.User
		resp.User = &user
	}
	return resp
}
