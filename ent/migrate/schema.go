// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"crime", "road", "infrastructure", "environment", "traffic", "security", "services", "other"}},
		{Name: "location", Type: field.TypeString, Default: ""},
		{Name: "latitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "longitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "region", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "medium"},
		{Name: "is_anonymous", Type: field.TypeBool, Default: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "verified", "resolved"}, Default: "pending"},
		{Name: "media", Type: field.TypeJSON, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reports_users_reports",
				Columns:    []*schema.Column{ReportsColumns[14]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "report_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[1]},
			},
			{
				Name:    "report_user_id",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[14]},
			},
			{
				Name:    "report_status",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[12]},
			},
		},
	}
	// ReportLikesColumns holds the columns for the "report_likes" table.
	ReportLikesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "report_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// ReportLikesTable holds the schema information for the "report_likes" table.
	ReportLikesTable = &schema.Table{
		Name:       "report_likes",
		Columns:    ReportLikesColumns,
		PrimaryKey: []*schema.Column{ReportLikesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "report_likes_reports_likes",
				Columns:    []*schema.Column{ReportLikesColumns[2]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "report_likes_users_likes",
				Columns:    []*schema.Column{ReportLikesColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reportlike_report_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{ReportLikesColumns[2], ReportLikesColumns[3]},
			},
		},
	}
	// ReportViewsColumns holds the columns for the "report_views" table.
	ReportViewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "report_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
	}
	// ReportViewsTable holds the schema information for the "report_views" table.
	ReportViewsTable = &schema.Table{
		Name:       "report_views",
		Columns:    ReportViewsColumns,
		PrimaryKey: []*schema.Column{ReportViewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "report_views_reports_views",
				Columns:    []*schema.Column{ReportViewsColumns[2]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "report_views_users_views",
				Columns:    []*schema.Column{ReportViewsColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reportview_report_id",
				Unique:  false,
				Columns: []*schema.Column{ReportViewsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString, Size: 255, Default: ""},
		{Name: "username", Type: field.TypeString, Size: 50, Default: ""},
		{Name: "display_name", Type: field.TypeString, Size: 100, Default: ""},
		{Name: "confirmed_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_confirmed_at_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[7], UsersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ReportsTable,
		ReportLikesTable,
		ReportViewsTable,
		UsersTable,
	}
)

func init() {
	ReportsTable.ForeignKeys[0].RefTable = UsersTable
	ReportLikesTable.ForeignKeys[0].RefTable = ReportsTable
	ReportLikesTable.ForeignKeys[1].RefTable = UsersTable
	ReportViewsTable.ForeignKeys[0].RefTable = ReportsTable
	ReportViewsTable.ForeignKeys[1].RefTable = UsersTable
}
