// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApplicantProfilesColumns holds the columns for the "applicant_profiles" table.
	ApplicantProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "full_name", Type: field.TypeString},
		{Name: "id_number", Type: field.TypeString, Unique: true},
		{Name: "phone_number", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "county", Type: field.TypeString},
		{Name: "sub_county", Type: field.TypeString, Nullable: true},
		{Name: "ward", Type: field.TypeString, Nullable: true},
		{Name: "village", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ApplicantProfilesTable holds the schema information for the "applicant_profiles" table.
	ApplicantProfilesTable = &schema.Table{
		Name:       "applicant_profiles",
		Columns:    ApplicantProfilesColumns,
		PrimaryKey: []*schema.Column{ApplicantProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "applicantprofile_id_number",
				Unique:  true,
				Columns: []*schema.Column{ApplicantProfilesColumns[2]},
			},
			{
				Name:    "applicantprofile_county",
				Unique:  false,
				Columns: []*schema.Column{ApplicantProfilesColumns[6]},
			},
		},
	}
	// ApplicationStatusLogsColumns holds the columns for the "application_status_logs" table.
	ApplicationStatusLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "old_status", Type: field.TypeString, Nullable: true},
		{Name: "new_status", Type: field.TypeString},
		{Name: "changed_by", Type: field.TypeString, Nullable: true},
		{Name: "comments", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "changed_at", Type: field.TypeTime},
		{Name: "application_id", Type: field.TypeUUID},
	}
	// ApplicationStatusLogsTable holds the schema information for the "application_status_logs" table.
	ApplicationStatusLogsTable = &schema.Table{
		Name:       "application_status_logs",
		Columns:    ApplicationStatusLogsColumns,
		PrimaryKey: []*schema.Column{ApplicationStatusLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "application_status_logs_bursary_applications_status_logs",
				Columns:    []*schema.Column{ApplicationStatusLogsColumns[6]},
				RefColumns: []*schema.Column{BursaryApplicationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "applicationstatuslog_application_id_changed_at",
				Unique:  false,
				Columns: []*schema.Column{ApplicationStatusLogsColumns[6], ApplicationStatusLogsColumns[5]},
			},
		},
	}
	// BursaryApplicationsColumns holds the columns for the "bursary_applications" table.
	BursaryApplicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "application_number", Type: field.TypeString, Unique: true},
		{Name: "student_name", Type: field.TypeString},
		{Name: "institution_name", Type: field.TypeString},
		{Name: "education_level", Type: field.TypeString, Nullable: true},
		{Name: "annual_family_income", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tuition_fee", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "amount_requested", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "number_of_siblings", Type: field.TypeInt, Default: 0},
		{Name: "siblings_in_school", Type: field.TypeInt, Default: 0},
		{Name: "is_orphan", Type: field.TypeBool, Default: false},
		{Name: "has_disability", Type: field.TypeBool, Default: false},
		{Name: "is_single_parent", Type: field.TypeBool, Default: false},
		{Name: "previous_bursary_recipient", Type: field.TypeBool, Default: false},
		{Name: "reason_for_application", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "is_verified", Type: field.TypeBool, Default: false},
		{Name: "verified_by", Type: field.TypeString, Nullable: true},
		{Name: "verified_at", Type: field.TypeTime, Nullable: true},
		{Name: "is_flagged", Type: field.TypeBool, Default: false},
		{Name: "flag_reason", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "reviewer_comments", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "submitted_at", Type: field.TypeTime},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// BursaryApplicationsTable holds the schema information for the "bursary_applications" table.
	BursaryApplicationsTable = &schema.Table{
		Name:       "bursary_applications",
		Columns:    BursaryApplicationsColumns,
		PrimaryKey: []*schema.Column{BursaryApplicationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bursary_applications_applicant_profiles_applications",
				Columns:    []*schema.Column{BursaryApplicationsColumns[26]},
				RefColumns: []*schema.Column{ApplicantProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "bursaryapplication_profile_id_status_submitted_at",
				Unique:  false,
				Columns: []*schema.Column{BursaryApplicationsColumns[26], BursaryApplicationsColumns[15], BursaryApplicationsColumns[22]},
			},
			{
				Name:    "bursaryapplication_status",
				Unique:  false,
				Columns: []*schema.Column{BursaryApplicationsColumns[15]},
			},
			{
				Name:    "bursaryapplication_application_number",
				Unique:  true,
				Columns: []*schema.Column{BursaryApplicationsColumns[1]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "document_type", Type: field.TypeString},
		{Name: "source_path", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "is_verified", Type: field.TypeBool, Default: false},
		{Name: "is_flagged", Type: field.TypeBool, Default: false},
		{Name: "verification_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "verification_result", Type: field.TypeJSON, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "application_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_bursary_applications_documents",
				Columns:    []*schema.Column{DocumentsColumns[11]},
				RefColumns: []*schema.Column{BursaryApplicationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_application_id_document_type",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[11], DocumentsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApplicantProfilesTable,
		ApplicationStatusLogsTable,
		BursaryApplicationsTable,
		DocumentsTable,
	}
)

func init() {
	ApplicantProfilesTable.Annotation = &entsql.Annotation{
		Table: "applicant_profiles",
	}
	ApplicationStatusLogsTable.ForeignKeys[0].RefTable = BursaryApplicationsTable
	ApplicationStatusLogsTable.Annotation = &entsql.Annotation{
		Table: "application_status_logs",
	}
	BursaryApplicationsTable.ForeignKeys[0].RefTable = ApplicantProfilesTable
	BursaryApplicationsTable.Annotation = &entsql.Annotation{
		Table: "bursary_applications",
	}
	DocumentsTable.ForeignKeys[0].RefTable = BursaryApplicationsTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
}
