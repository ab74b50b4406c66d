// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: bursary/v1/bursary.proto

package bursarypb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ApplicantProfile struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FullName      string                 `protobuf:"bytes,2,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	IdNumber      string                 `protobuf:"bytes,3,opt,name=id_number,json=idNumber,proto3" json:"id_number,omitempty"`
	PhoneNumber   string                 `protobuf:"bytes,4,opt,name=phone_number,json=phoneNumber,proto3" json:"phone_number,omitempty"`
	DateOfBirth   string                 `protobuf:"bytes,5,opt,name=date_of_birth,json=dateOfBirth,proto3" json:"date_of_birth,omitempty"` // YYYY-MM-DD
	County        string                 `protobuf:"bytes,6,opt,name=county,proto3" json:"county,omitempty"`
	SubCounty     string                 `protobuf:"bytes,7,opt,name=sub_county,json=subCounty,proto3" json:"sub_county,omitempty"`
	Ward          string                 `protobuf:"bytes,8,opt,name=ward,proto3" json:"ward,omitempty"`
	Village       string                 `protobuf:"bytes,9,opt,name=village,proto3" json:"village,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	Email         string                 `protobuf:"bytes,12,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplicantProfile) Reset() {
	*x = ApplicantProfile{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplicantProfile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplicantProfile) ProtoMessage() {}

func (x *ApplicantProfile) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplicantProfile.ProtoReflect.Descriptor instead.
func (*ApplicantProfile) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{0}
}

func (x *ApplicantProfile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ApplicantProfile) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *ApplicantProfile) GetIdNumber() string {
	if x != nil {
		return x.IdNumber
	}
	return ""
}

func (x *ApplicantProfile) GetPhoneNumber() string {
	if x != nil {
		return x.PhoneNumber
	}
	return ""
}

func (x *ApplicantProfile) GetDateOfBirth() string {
	if x != nil {
		return x.DateOfBirth
	}
	return ""
}

func (x *ApplicantProfile) GetCounty() string {
	if x != nil {
		return x.County
	}
	return ""
}

func (x *ApplicantProfile) GetSubCounty() string {
	if x != nil {
		return x.SubCounty
	}
	return ""
}

func (x *ApplicantProfile) GetWard() string {
	if x != nil {
		return x.Ward
	}
	return ""
}

func (x *ApplicantProfile) GetVillage() string {
	if x != nil {
		return x.Village
	}
	return ""
}

func (x *ApplicantProfile) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *ApplicantProfile) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

func (x *ApplicantProfile) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type Application struct {
	state                    protoimpl.MessageState `protogen:"open.v1"`
	Id                       string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ApplicationNumber        string                 `protobuf:"bytes,2,opt,name=application_number,json=applicationNumber,proto3" json:"application_number,omitempty"`
	ProfileId                string                 `protobuf:"bytes,3,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	StudentName              string                 `protobuf:"bytes,4,opt,name=student_name,json=studentName,proto3" json:"student_name,omitempty"`
	InstitutionName          string                 `protobuf:"bytes,5,opt,name=institution_name,json=institutionName,proto3" json:"institution_name,omitempty"`
	EducationLevel           string                 `protobuf:"bytes,6,opt,name=education_level,json=educationLevel,proto3" json:"education_level,omitempty"`
	AnnualFamilyIncome       string                 `protobuf:"bytes,7,opt,name=annual_family_income,json=annualFamilyIncome,proto3" json:"annual_family_income,omitempty"`
	TuitionFee               string                 `protobuf:"bytes,8,opt,name=tuition_fee,json=tuitionFee,proto3" json:"tuition_fee,omitempty"`
	AmountRequested          string                 `protobuf:"bytes,9,opt,name=amount_requested,json=amountRequested,proto3" json:"amount_requested,omitempty"`
	NumberOfSiblings         int32                  `protobuf:"varint,10,opt,name=number_of_siblings,json=numberOfSiblings,proto3" json:"number_of_siblings,omitempty"`
	SiblingsInSchool         int32                  `protobuf:"varint,11,opt,name=siblings_in_school,json=siblingsInSchool,proto3" json:"siblings_in_school,omitempty"`
	IsOrphan                 bool                   `protobuf:"varint,12,opt,name=is_orphan,json=isOrphan,proto3" json:"is_orphan,omitempty"`
	HasDisability            bool                   `protobuf:"varint,13,opt,name=has_disability,json=hasDisability,proto3" json:"has_disability,omitempty"`
	IsSingleParent           bool                   `protobuf:"varint,14,opt,name=is_single_parent,json=isSingleParent,proto3" json:"is_single_parent,omitempty"`
	PreviousBursaryRecipient bool                   `protobuf:"varint,15,opt,name=previous_bursary_recipient,json=previousBursaryRecipient,proto3" json:"previous_bursary_recipient,omitempty"`
	ReasonForApplication     string                 `protobuf:"bytes,16,opt,name=reason_for_application,json=reasonForApplication,proto3" json:"reason_for_application,omitempty"`
	Status                   string                 `protobuf:"bytes,17,opt,name=status,proto3" json:"status,omitempty"`
	IsVerified               bool                   `protobuf:"varint,18,opt,name=is_verified,json=isVerified,proto3" json:"is_verified,omitempty"`
	IsFlagged                bool                   `protobuf:"varint,19,opt,name=is_flagged,json=isFlagged,proto3" json:"is_flagged,omitempty"`
	FlagReason               string                 `protobuf:"bytes,20,opt,name=flag_reason,json=flagReason,proto3" json:"flag_reason,omitempty"`
	ReviewerComments         string                 `protobuf:"bytes,21,opt,name=reviewer_comments,json=reviewerComments,proto3" json:"reviewer_comments,omitempty"`
	SubmittedAt              string                 `protobuf:"bytes,22,opt,name=submitted_at,json=submittedAt,proto3" json:"submitted_at,omitempty"`
	ReviewedAt               string                 `protobuf:"bytes,23,opt,name=reviewed_at,json=reviewedAt,proto3" json:"reviewed_at,omitempty"`
	unknownFields            protoimpl.UnknownFields
	sizeCache                protoimpl.SizeCache
}

func (x *Application) Reset() {
	*x = Application{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Application) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Application) ProtoMessage() {}

func (x *Application) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Application.ProtoReflect.Descriptor instead.
func (*Application) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{1}
}

func (x *Application) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Application) GetApplicationNumber() string {
	if x != nil {
		return x.ApplicationNumber
	}
	return ""
}

func (x *Application) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *Application) GetStudentName() string {
	if x != nil {
		return x.StudentName
	}
	return ""
}

func (x *Application) GetInstitutionName() string {
	if x != nil {
		return x.InstitutionName
	}
	return ""
}

func (x *Application) GetEducationLevel() string {
	if x != nil {
		return x.EducationLevel
	}
	return ""
}

func (x *Application) GetAnnualFamilyIncome() string {
	if x != nil {
		return x.AnnualFamilyIncome
	}
	return ""
}

func (x *Application) GetTuitionFee() string {
	if x != nil {
		return x.TuitionFee
	}
	return ""
}

func (x *Application) GetAmountRequested() string {
	if x != nil {
		return x.AmountRequested
	}
	return ""
}

func (x *Application) GetNumberOfSiblings() int32 {
	if x != nil {
		return x.NumberOfSiblings
	}
	return 0
}

func (x *Application) GetSiblingsInSchool() int32 {
	if x != nil {
		return x.SiblingsInSchool
	}
	return 0
}

func (x *Application) GetIsOrphan() bool {
	if x != nil {
		return x.IsOrphan
	}
	return false
}

func (x *Application) GetHasDisability() bool {
	if x != nil {
		return x.HasDisability
	}
	return false
}

func (x *Application) GetIsSingleParent() bool {
	if x != nil {
		return x.IsSingleParent
	}
	return false
}

func (x *Application) GetPreviousBursaryRecipient() bool {
	if x != nil {
		return x.PreviousBursaryRecipient
	}
	return false
}

func (x *Application) GetReasonForApplication() string {
	if x != nil {
		return x.ReasonForApplication
	}
	return ""
}

func (x *Application) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Application) GetIsVerified() bool {
	if x != nil {
		return x.IsVerified
	}
	return false
}

func (x *Application) GetIsFlagged() bool {
	if x != nil {
		return x.IsFlagged
	}
	return false
}

func (x *Application) GetFlagReason() string {
	if x != nil {
		return x.FlagReason
	}
	return ""
}

func (x *Application) GetReviewerComments() string {
	if x != nil {
		return x.ReviewerComments
	}
	return ""
}

func (x *Application) GetSubmittedAt() string {
	if x != nil {
		return x.SubmittedAt
	}
	return ""
}

func (x *Application) GetReviewedAt() string {
	if x != nil {
		return x.ReviewedAt
	}
	return ""
}

type NeedScore struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Total         int32                  `protobuf:"varint,1,opt,name=total,proto3" json:"total,omitempty"`
	Income        int32                  `protobuf:"varint,2,opt,name=income,proto3" json:"income,omitempty"`
	Siblings      int32                  `protobuf:"varint,3,opt,name=siblings,proto3" json:"siblings,omitempty"`
	Orphan        int32                  `protobuf:"varint,4,opt,name=orphan,proto3" json:"orphan,omitempty"`
	SingleParent  int32                  `protobuf:"varint,5,opt,name=single_parent,json=singleParent,proto3" json:"single_parent,omitempty"`
	Disability    int32                  `protobuf:"varint,6,opt,name=disability,proto3" json:"disability,omitempty"`
	FirstTime     int32                  `protobuf:"varint,7,opt,name=first_time,json=firstTime,proto3" json:"first_time,omitempty"`
	FeeBurden     int32                  `protobuf:"varint,8,opt,name=fee_burden,json=feeBurden,proto3" json:"fee_burden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NeedScore) Reset() {
	*x = NeedScore{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NeedScore) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NeedScore) ProtoMessage() {}

func (x *NeedScore) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NeedScore.ProtoReflect.Descriptor instead.
func (*NeedScore) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{2}
}

func (x *NeedScore) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *NeedScore) GetIncome() int32 {
	if x != nil {
		return x.Income
	}
	return 0
}

func (x *NeedScore) GetSiblings() int32 {
	if x != nil {
		return x.Siblings
	}
	return 0
}

func (x *NeedScore) GetOrphan() int32 {
	if x != nil {
		return x.Orphan
	}
	return 0
}

func (x *NeedScore) GetSingleParent() int32 {
	if x != nil {
		return x.SingleParent
	}
	return 0
}

func (x *NeedScore) GetDisability() int32 {
	if x != nil {
		return x.Disability
	}
	return 0
}

func (x *NeedScore) GetFirstTime() int32 {
	if x != nil {
		return x.FirstTime
	}
	return 0
}

func (x *NeedScore) GetFeeBurden() int32 {
	if x != nil {
		return x.FeeBurden
	}
	return 0
}

type RankedApplication struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Application   *Application           `protobuf:"bytes,1,opt,name=application,proto3" json:"application,omitempty"`
	Score         *NeedScore             `protobuf:"bytes,2,opt,name=score,proto3" json:"score,omitempty"`
	Rank          int32                  `protobuf:"varint,3,opt,name=rank,proto3" json:"rank,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RankedApplication) Reset() {
	*x = RankedApplication{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RankedApplication) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RankedApplication) ProtoMessage() {}

func (x *RankedApplication) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RankedApplication.ProtoReflect.Descriptor instead.
func (*RankedApplication) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{3}
}

func (x *RankedApplication) GetApplication() *Application {
	if x != nil {
		return x.Application
	}
	return nil
}

func (x *RankedApplication) GetScore() *NeedScore {
	if x != nil {
		return x.Score
	}
	return nil
}

func (x *RankedApplication) GetRank() int32 {
	if x != nil {
		return x.Rank
	}
	return 0
}

type FieldMatch struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Field          string                 `protobuf:"bytes,1,opt,name=field,proto3" json:"field,omitempty"`
	Matched        bool                   `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Confidence     float32                `protobuf:"fixed32,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	ExtractedValue string                 `protobuf:"bytes,4,opt,name=extracted_value,json=extractedValue,proto3" json:"extracted_value,omitempty"`
	ExpectedValue  string                 `protobuf:"bytes,5,opt,name=expected_value,json=expectedValue,proto3" json:"expected_value,omitempty"`
	Warning        string                 `protobuf:"bytes,6,opt,name=warning,proto3" json:"warning,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *FieldMatch) Reset() {
	*x = FieldMatch{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldMatch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldMatch) ProtoMessage() {}

func (x *FieldMatch) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldMatch.ProtoReflect.Descriptor instead.
func (*FieldMatch) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{4}
}

func (x *FieldMatch) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *FieldMatch) GetMatched() bool {
	if x != nil {
		return x.Matched
	}
	return false
}

func (x *FieldMatch) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *FieldMatch) GetExtractedValue() string {
	if x != nil {
		return x.ExtractedValue
	}
	return ""
}

func (x *FieldMatch) GetExpectedValue() string {
	if x != nil {
		return x.ExpectedValue
	}
	return ""
}

func (x *FieldMatch) GetWarning() string {
	if x != nil {
		return x.Warning
	}
	return ""
}

type VerificationResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Verified      bool                   `protobuf:"varint,2,opt,name=verified,proto3" json:"verified,omitempty"`
	Confidence    float32                `protobuf:"fixed32,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Matches       []*FieldMatch          `protobuf:"bytes,4,rep,name=matches,proto3" json:"matches,omitempty"`
	Errors        []string               `protobuf:"bytes,5,rep,name=errors,proto3" json:"errors,omitempty"`
	Warnings      []string               `protobuf:"bytes,6,rep,name=warnings,proto3" json:"warnings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerificationResult) Reset() {
	*x = VerificationResult{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerificationResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerificationResult) ProtoMessage() {}

func (x *VerificationResult) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerificationResult.ProtoReflect.Descriptor instead.
func (*VerificationResult) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{5}
}

func (x *VerificationResult) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *VerificationResult) GetVerified() bool {
	if x != nil {
		return x.Verified
	}
	return false
}

func (x *VerificationResult) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *VerificationResult) GetMatches() []*FieldMatch {
	if x != nil {
		return x.Matches
	}
	return nil
}

func (x *VerificationResult) GetErrors() []string {
	if x != nil {
		return x.Errors
	}
	return nil
}

func (x *VerificationResult) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

type DocumentInput struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentType  string                 `protobuf:"bytes,1,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	SourcePath    string                 `protobuf:"bytes,2,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DocumentInput) Reset() {
	*x = DocumentInput{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DocumentInput) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DocumentInput) ProtoMessage() {}

func (x *DocumentInput) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DocumentInput.ProtoReflect.Descriptor instead.
func (*DocumentInput) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{6}
}

func (x *DocumentInput) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *DocumentInput) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *DocumentInput) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type SubmitApplicationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       *ApplicantProfile      `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	Application   *Application           `protobuf:"bytes,2,opt,name=application,proto3" json:"application,omitempty"`
	Documents     []*DocumentInput       `protobuf:"bytes,3,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitApplicationRequest) Reset() {
	*x = SubmitApplicationRequest{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitApplicationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitApplicationRequest) ProtoMessage() {}

func (x *SubmitApplicationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitApplicationRequest.ProtoReflect.Descriptor instead.
func (*SubmitApplicationRequest) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{7}
}

func (x *SubmitApplicationRequest) GetProfile() *ApplicantProfile {
	if x != nil {
		return x.Profile
	}
	return nil
}

func (x *SubmitApplicationRequest) GetApplication() *Application {
	if x != nil {
		return x.Application
	}
	return nil
}

func (x *SubmitApplicationRequest) GetDocuments() []*DocumentInput {
	if x != nil {
		return x.Documents
	}
	return nil
}

type SubmitApplicationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Application   *Application           `protobuf:"bytes,1,opt,name=application,proto3" json:"application,omitempty"`
	Score         *NeedScore             `protobuf:"bytes,2,opt,name=score,proto3" json:"score,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitApplicationResponse) Reset() {
	*x = SubmitApplicationResponse{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitApplicationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitApplicationResponse) ProtoMessage() {}

func (x *SubmitApplicationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitApplicationResponse.ProtoReflect.Descriptor instead.
func (*SubmitApplicationResponse) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{8}
}

func (x *SubmitApplicationResponse) GetApplication() *Application {
	if x != nil {
		return x.Application
	}
	return nil
}

func (x *SubmitApplicationResponse) GetScore() *NeedScore {
	if x != nil {
		return x.Score
	}
	return nil
}

type GetApplicationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApplicationId string                 `protobuf:"bytes,1,opt,name=application_id,json=applicationId,proto3" json:"application_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetApplicationRequest) Reset() {
	*x = GetApplicationRequest{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetApplicationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetApplicationRequest) ProtoMessage() {}

func (x *GetApplicationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetApplicationRequest.ProtoReflect.Descriptor instead.
func (*GetApplicationRequest) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{9}
}

func (x *GetApplicationRequest) GetApplicationId() string {
	if x != nil {
		return x.ApplicationId
	}
	return ""
}

type GetApplicationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Application   *Application           `protobuf:"bytes,1,opt,name=application,proto3" json:"application,omitempty"`
	Score         *NeedScore             `protobuf:"bytes,2,opt,name=score,proto3" json:"score,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetApplicationResponse) Reset() {
	*x = GetApplicationResponse{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetApplicationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetApplicationResponse) ProtoMessage() {}

func (x *GetApplicationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetApplicationResponse.ProtoReflect.Descriptor instead.
func (*GetApplicationResponse) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{10}
}

func (x *GetApplicationResponse) GetApplication() *Application {
	if x != nil {
		return x.Application
	}
	return nil
}

func (x *GetApplicationResponse) GetScore() *NeedScore {
	if x != nil {
		return x.Score
	}
	return nil
}

type ListApplicationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	County        string                 `protobuf:"bytes,2,opt,name=county,proto3" json:"county,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListApplicationsRequest) Reset() {
	*x = ListApplicationsRequest{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListApplicationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListApplicationsRequest) ProtoMessage() {}

func (x *ListApplicationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListApplicationsRequest.ProtoReflect.Descriptor instead.
func (*ListApplicationsRequest) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{11}
}

func (x *ListApplicationsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListApplicationsRequest) GetCounty() string {
	if x != nil {
		return x.County
	}
	return ""
}

type ListApplicationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Applications  []*Application         `protobuf:"bytes,1,rep,name=applications,proto3" json:"applications,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListApplicationsResponse) Reset() {
	*x = ListApplicationsResponse{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListApplicationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListApplicationsResponse) ProtoMessage() {}

func (x *ListApplicationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListApplicationsResponse.ProtoReflect.Descriptor instead.
func (*ListApplicationsResponse) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{12}
}

func (x *ListApplicationsResponse) GetApplications() []*Application {
	if x != nil {
		return x.Applications
	}
	return nil
}

type RankApplicationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	County        string                 `protobuf:"bytes,1,opt,name=county,proto3" json:"county,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RankApplicationsRequest) Reset() {
	*x = RankApplicationsRequest{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RankApplicationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RankApplicationsRequest) ProtoMessage() {}

func (x *RankApplicationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RankApplicationsRequest.ProtoReflect.Descriptor instead.
func (*RankApplicationsRequest) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{13}
}

func (x *RankApplicationsRequest) GetCounty() string {
	if x != nil {
		return x.County
	}
	return ""
}

type RankApplicationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Applications  []*RankedApplication   `protobuf:"bytes,1,rep,name=applications,proto3" json:"applications,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RankApplicationsResponse) Reset() {
	*x = RankApplicationsResponse{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RankApplicationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RankApplicationsResponse) ProtoMessage() {}

func (x *RankApplicationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RankApplicationsResponse.ProtoReflect.Descriptor instead.
func (*RankApplicationsResponse) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{14}
}

func (x *RankApplicationsResponse) GetApplications() []*RankedApplication {
	if x != nil {
		return x.Applications
	}
	return nil
}

type ComputeNeedScoreRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApplicationId string                 `protobuf:"bytes,1,opt,name=application_id,json=applicationId,proto3" json:"application_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ComputeNeedScoreRequest) Reset() {
	*x = ComputeNeedScoreRequest{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ComputeNeedScoreRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ComputeNeedScoreRequest) ProtoMessage() {}

func (x *ComputeNeedScoreRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ComputeNeedScoreRequest.ProtoReflect.Descriptor instead.
func (*ComputeNeedScoreRequest) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{15}
}

func (x *ComputeNeedScoreRequest) GetApplicationId() string {
	if x != nil {
		return x.ApplicationId
	}
	return ""
}

type ComputeNeedScoreResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Score         *NeedScore             `protobuf:"bytes,1,opt,name=score,proto3" json:"score,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ComputeNeedScoreResponse) Reset() {
	*x = ComputeNeedScoreResponse{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ComputeNeedScoreResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ComputeNeedScoreResponse) ProtoMessage() {}

func (x *ComputeNeedScoreResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ComputeNeedScoreResponse.ProtoReflect.Descriptor instead.
func (*ComputeNeedScoreResponse) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{16}
}

func (x *ComputeNeedScoreResponse) GetScore() *NeedScore {
	if x != nil {
		return x.Score
	}
	return nil
}

type VerifyDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyDocumentRequest) Reset() {
	*x = VerifyDocumentRequest{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyDocumentRequest) ProtoMessage() {}

func (x *VerifyDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyDocumentRequest.ProtoReflect.Descriptor instead.
func (*VerifyDocumentRequest) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{17}
}

func (x *VerifyDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type VerifyDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Result        *VerificationResult    `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyDocumentResponse) Reset() {
	*x = VerifyDocumentResponse{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyDocumentResponse) ProtoMessage() {}

func (x *VerifyDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyDocumentResponse.ProtoReflect.Descriptor instead.
func (*VerifyDocumentResponse) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{18}
}

func (x *VerifyDocumentResponse) GetResult() *VerificationResult {
	if x != nil {
		return x.Result
	}
	return nil
}

type ReviewApplicationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApplicationId string                 `protobuf:"bytes,1,opt,name=application_id,json=applicationId,proto3" json:"application_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	ReviewedBy    string                 `protobuf:"bytes,3,opt,name=reviewed_by,json=reviewedBy,proto3" json:"reviewed_by,omitempty"`
	Comments      string                 `protobuf:"bytes,4,opt,name=comments,proto3" json:"comments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReviewApplicationRequest) Reset() {
	*x = ReviewApplicationRequest{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReviewApplicationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReviewApplicationRequest) ProtoMessage() {}

func (x *ReviewApplicationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReviewApplicationRequest.ProtoReflect.Descriptor instead.
func (*ReviewApplicationRequest) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{19}
}

func (x *ReviewApplicationRequest) GetApplicationId() string {
	if x != nil {
		return x.ApplicationId
	}
	return ""
}

func (x *ReviewApplicationRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ReviewApplicationRequest) GetReviewedBy() string {
	if x != nil {
		return x.ReviewedBy
	}
	return ""
}

func (x *ReviewApplicationRequest) GetComments() string {
	if x != nil {
		return x.Comments
	}
	return ""
}

type ReviewApplicationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Application   *Application           `protobuf:"bytes,1,opt,name=application,proto3" json:"application,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReviewApplicationResponse) Reset() {
	*x = ReviewApplicationResponse{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReviewApplicationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReviewApplicationResponse) ProtoMessage() {}

func (x *ReviewApplicationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReviewApplicationResponse.ProtoReflect.Descriptor instead.
func (*ReviewApplicationResponse) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{20}
}

func (x *ReviewApplicationResponse) GetApplication() *Application {
	if x != nil {
		return x.Application
	}
	return nil
}

type ExportPriorityListRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	County        string                 `protobuf:"bytes,1,opt,name=county,proto3" json:"county,omitempty"`
	OutputPath    string                 `protobuf:"bytes,2,opt,name=output_path,json=outputPath,proto3" json:"output_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportPriorityListRequest) Reset() {
	*x = ExportPriorityListRequest{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportPriorityListRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportPriorityListRequest) ProtoMessage() {}

func (x *ExportPriorityListRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportPriorityListRequest.ProtoReflect.Descriptor instead.
func (*ExportPriorityListRequest) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{21}
}

func (x *ExportPriorityListRequest) GetCounty() string {
	if x != nil {
		return x.County
	}
	return ""
}

func (x *ExportPriorityListRequest) GetOutputPath() string {
	if x != nil {
		return x.OutputPath
	}
	return ""
}

type ExportPriorityListResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FilePath      string                 `protobuf:"bytes,1,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	RowCount      int32                  `protobuf:"varint,2,opt,name=row_count,json=rowCount,proto3" json:"row_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportPriorityListResponse) Reset() {
	*x = ExportPriorityListResponse{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportPriorityListResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportPriorityListResponse) ProtoMessage() {}

func (x *ExportPriorityListResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportPriorityListResponse.ProtoReflect.Descriptor instead.
func (*ExportPriorityListResponse) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{22}
}

func (x *ExportPriorityListResponse) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *ExportPriorityListResponse) GetRowCount() int32 {
	if x != nil {
		return x.RowCount
	}
	return 0
}

type GetStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStatsRequest) Reset() {
	*x = GetStatsRequest{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatsRequest) ProtoMessage() {}

func (x *GetStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatsRequest.ProtoReflect.Descriptor instead.
func (*GetStatsRequest) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{23}
}

type StatusCount struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Count         int64                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StatusCount) Reset() {
	*x = StatusCount{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatusCount) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusCount) ProtoMessage() {}

func (x *StatusCount) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatusCount.ProtoReflect.Descriptor instead.
func (*StatusCount) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{24}
}

func (x *StatusCount) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *StatusCount) GetCount() int64 {
	if x != nil {
		return x.Count
	}
	return 0
}

type CountyCount struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	County         string                 `protobuf:"bytes,1,opt,name=county,proto3" json:"county,omitempty"`
	Count          int64                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	TotalRequested string                 `protobuf:"bytes,3,opt,name=total_requested,json=totalRequested,proto3" json:"total_requested,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CountyCount) Reset() {
	*x = CountyCount{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CountyCount) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CountyCount) ProtoMessage() {}

func (x *CountyCount) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CountyCount.ProtoReflect.Descriptor instead.
func (*CountyCount) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{25}
}

func (x *CountyCount) GetCounty() string {
	if x != nil {
		return x.County
	}
	return ""
}

func (x *CountyCount) GetCount() int64 {
	if x != nil {
		return x.Count
	}
	return 0
}

func (x *CountyCount) GetTotalRequested() string {
	if x != nil {
		return x.TotalRequested
	}
	return ""
}

type GetStatsResponse struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	TotalApplications    int64                  `protobuf:"varint,1,opt,name=total_applications,json=totalApplications,proto3" json:"total_applications,omitempty"`
	ByStatus             []*StatusCount         `protobuf:"bytes,2,rep,name=by_status,json=byStatus,proto3" json:"by_status,omitempty"`
	ByCounty             []*CountyCount         `protobuf:"bytes,3,rep,name=by_county,json=byCounty,proto3" json:"by_county,omitempty"`
	TotalAmountRequested string                 `protobuf:"bytes,4,opt,name=total_amount_requested,json=totalAmountRequested,proto3" json:"total_amount_requested,omitempty"`
	AverageNeedScore     string                 `protobuf:"bytes,5,opt,name=average_need_score,json=averageNeedScore,proto3" json:"average_need_score,omitempty"`
	FlaggedCount         int64                  `protobuf:"varint,6,opt,name=flagged_count,json=flaggedCount,proto3" json:"flagged_count,omitempty"`
	VerifiedCount        int64                  `protobuf:"varint,7,opt,name=verified_count,json=verifiedCount,proto3" json:"verified_count,omitempty"`
	ApprovalRate         string                 `protobuf:"bytes,8,opt,name=approval_rate,json=approvalRate,proto3" json:"approval_rate,omitempty"`
	AvgProcessingDays    string                 `protobuf:"bytes,9,opt,name=avg_processing_days,json=avgProcessingDays,proto3" json:"avg_processing_days,omitempty"`
	HighPriorityCount    int64                  `protobuf:"varint,10,opt,name=high_priority_count,json=highPriorityCount,proto3" json:"high_priority_count,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *GetStatsResponse) Reset() {
	*x = GetStatsResponse{}
	mi := &file_bursary_v1_bursary_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatsResponse) ProtoMessage() {}

func (x *GetStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_bursary_v1_bursary_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatsResponse.ProtoReflect.Descriptor instead.
func (*GetStatsResponse) Descriptor() ([]byte, []int) {
	return file_bursary_v1_bursary_proto_rawDescGZIP(), []int{26}
}

func (x *GetStatsResponse) GetTotalApplications() int64 {
	if x != nil {
		return x.TotalApplications
	}
	return 0
}

func (x *GetStatsResponse) GetByStatus() []*StatusCount {
	if x != nil {
		return x.ByStatus
	}
	return nil
}

func (x *GetStatsResponse) GetByCounty() []*CountyCount {
	if x != nil {
		return x.ByCounty
	}
	return nil
}

func (x *GetStatsResponse) GetTotalAmountRequested() string {
	if x != nil {
		return x.TotalAmountRequested
	}
	return ""
}

func (x *GetStatsResponse) GetAverageNeedScore() string {
	if x != nil {
		return x.AverageNeedScore
	}
	return ""
}

func (x *GetStatsResponse) GetFlaggedCount() int64 {
	if x != nil {
		return x.FlaggedCount
	}
	return 0
}

func (x *GetStatsResponse) GetVerifiedCount() int64 {
	if x != nil {
		return x.VerifiedCount
	}
	return 0
}

func (x *GetStatsResponse) GetApprovalRate() string {
	if x != nil {
		return x.ApprovalRate
	}
	return ""
}

func (x *GetStatsResponse) GetAvgProcessingDays() string {
	if x != nil {
		return x.AvgProcessingDays
	}
	return ""
}

func (x *GetStatsResponse) GetHighPriorityCount() int64 {
	if x != nil {
		return x.HighPriorityCount
	}
	return 0
}

var File_bursary_v1_bursary_proto protoreflect.FileDescriptor

const file_bursary_v1_bursary_proto_rawDesc = "" +
	"\n" +
	"\x18bursary/v1/bursary.proto\x12\n" +
	"bursary.v1\"\xdc\x02\n" +
	"\x10ApplicantProfile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tfull_name\x18\x02 \x01(\tR\bfullName\x12\x1b\n" +
	"\tid_number\x18\x03 \x01(\tR\bidNumber\x12!\n" +
	"\fphone_number\x18\x04 \x01(\tR\vphoneNumber\x12\"\n" +
	"\rdate_of_birth\x18\x05 \x01(\tR\vdateOfBirth\x12\x16\n" +
	"\x06county\x18\x06 \x01(\tR\x06county\x12\x1d\n" +
	"\n" +
	"sub_county\x18\a \x01(\tR\tsubCounty\x12\x12\n" +
	"\x04ward\x18\b \x01(\tR\x04ward\x12\x18\n" +
	"\avillage\x18\t \x01(\tR\avillage\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\x12\x14\n" +
	"\x05email\x18\f \x01(\tR\x05email\"\x88\a\n" +
	"\vApplication\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12-\n" +
	"\x12application_number\x18\x02 \x01(\tR\x11applicationNumber\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x03 \x01(\tR\tprofileId\x12!\n" +
	"\fstudent_name\x18\x04 \x01(\tR\vstudentName\x12)\n" +
	"\x10institution_name\x18\x05 \x01(\tR\x0finstitutionName\x12'\n" +
	"\x0feducation_level\x18\x06 \x01(\tR\x0eeducationLevel\x120\n" +
	"\x14annual_family_income\x18\a \x01(\tR\x12annualFamilyIncome\x12\x1f\n" +
	"\vtuition_fee\x18\b \x01(\tR\n" +
	"tuitionFee\x12)\n" +
	"\x10amount_requested\x18\t \x01(\tR\x0famountRequested\x12,\n" +
	"\x12number_of_siblings\x18\n" +
	" \x01(\x05R\x10numberOfSiblings\x12,\n" +
	"\x12siblings_in_school\x18\v \x01(\x05R\x10siblingsInSchool\x12\x1b\n" +
	"\tis_orphan\x18\f \x01(\bR\bisOrphan\x12%\n" +
	"\x0ehas_disability\x18\r \x01(\bR\rhasDisability\x12(\n" +
	"\x10is_single_parent\x18\x0e \x01(\bR\x0eisSingleParent\x12<\n" +
	"\x1aprevious_bursary_recipient\x18\x0f \x01(\bR\x18previousBursaryRecipient\x124\n" +
	"\x16reason_for_application\x18\x10 \x01(\tR\x14reasonForApplication\x12\x16\n" +
	"\x06status\x18\x11 \x01(\tR\x06status\x12\x1f\n" +
	"\vis_verified\x18\x12 \x01(\bR\n" +
	"isVerified\x12\x1d\n" +
	"\n" +
	"is_flagged\x18\x13 \x01(\bR\tisFlagged\x12\x1f\n" +
	"\vflag_reason\x18\x14 \x01(\tR\n" +
	"flagReason\x12+\n" +
	"\x11reviewer_comments\x18\x15 \x01(\tR\x10reviewerComments\x12!\n" +
	"\fsubmitted_at\x18\x16 \x01(\tR\vsubmittedAt\x12\x1f\n" +
	"\vreviewed_at\x18\x17 \x01(\tR\n" +
	"reviewedAt\"\xf0\x01\n" +
	"\tNeedScore\x12\x14\n" +
	"\x05total\x18\x01 \x01(\x05R\x05total\x12\x16\n" +
	"\x06income\x18\x02 \x01(\x05R\x06income\x12\x1a\n" +
	"\bsiblings\x18\x03 \x01(\x05R\bsiblings\x12\x16\n" +
	"\x06orphan\x18\x04 \x01(\x05R\x06orphan\x12#\n" +
	"\rsingle_parent\x18\x05 \x01(\x05R\fsingleParent\x12\x1e\n" +
	"\n" +
	"disability\x18\x06 \x01(\x05R\n" +
	"disability\x12\x1d\n" +
	"\n" +
	"first_time\x18\a \x01(\x05R\tfirstTime\x12\x1d\n" +
	"\n" +
	"fee_burden\x18\b \x01(\x05R\tfeeBurden\"\x8f\x01\n" +
	"\x11RankedApplication\x129\n" +
	"\vapplication\x18\x01 \x01(\v2\x17.bursary.v1.ApplicationR\vapplication\x12+\n" +
	"\x05score\x18\x02 \x01(\v2\x15.bursary.v1.NeedScoreR\x05score\x12\x12\n" +
	"\x04rank\x18\x03 \x01(\x05R\x04rank\"\xc6\x01\n" +
	"\n" +
	"FieldMatch\x12\x14\n" +
	"\x05field\x18\x01 \x01(\tR\x05field\x12\x18\n" +
	"\amatched\x18\x02 \x01(\bR\amatched\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x02R\n" +
	"confidence\x12'\n" +
	"\x0fextracted_value\x18\x04 \x01(\tR\x0eextractedValue\x12%\n" +
	"\x0eexpected_value\x18\x05 \x01(\tR\rexpectedValue\x12\x18\n" +
	"\awarning\x18\x06 \x01(\tR\awarning\"\xd0\x01\n" +
	"\x12VerificationResult\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12\x1a\n" +
	"\bverified\x18\x02 \x01(\bR\bverified\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x02R\n" +
	"confidence\x120\n" +
	"\amatches\x18\x04 \x03(\v2\x16.bursary.v1.FieldMatchR\amatches\x12\x16\n" +
	"\x06errors\x18\x05 \x03(\tR\x06errors\x12\x1a\n" +
	"\bwarnings\x18\x06 \x03(\tR\bwarnings\"w\n" +
	"\rDocumentInput\x12#\n" +
	"\rdocument_type\x18\x01 \x01(\tR\fdocumentType\x12\x1f\n" +
	"\vsource_path\x18\x02 \x01(\tR\n" +
	"sourcePath\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\"\xc6\x01\n" +
	"\x18SubmitApplicationRequest\x126\n" +
	"\aprofile\x18\x01 \x01(\v2\x1c.bursary.v1.ApplicantProfileR\aprofile\x129\n" +
	"\vapplication\x18\x02 \x01(\v2\x17.bursary.v1.ApplicationR\vapplication\x127\n" +
	"\tdocuments\x18\x03 \x03(\v2\x19.bursary.v1.DocumentInputR\tdocuments\"\x83\x01\n" +
	"\x19SubmitApplicationResponse\x129\n" +
	"\vapplication\x18\x01 \x01(\v2\x17.bursary.v1.ApplicationR\vapplication\x12+\n" +
	"\x05score\x18\x02 \x01(\v2\x15.bursary.v1.NeedScoreR\x05score\">\n" +
	"\x15GetApplicationRequest\x12%\n" +
	"\x0eapplication_id\x18\x01 \x01(\tR\rapplicationId\"\x80\x01\n" +
	"\x16GetApplicationResponse\x129\n" +
	"\vapplication\x18\x01 \x01(\v2\x17.bursary.v1.ApplicationR\vapplication\x12+\n" +
	"\x05score\x18\x02 \x01(\v2\x15.bursary.v1.NeedScoreR\x05score\"I\n" +
	"\x17ListApplicationsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x16\n" +
	"\x06county\x18\x02 \x01(\tR\x06county\"W\n" +
	"\x18ListApplicationsResponse\x12;\n" +
	"\fapplications\x18\x01 \x03(\v2\x17.bursary.v1.ApplicationR\fapplications\"1\n" +
	"\x17RankApplicationsRequest\x12\x16\n" +
	"\x06county\x18\x01 \x01(\tR\x06county\"]\n" +
	"\x18RankApplicationsResponse\x12A\n" +
	"\fapplications\x18\x01 \x03(\v2\x1d.bursary.v1.RankedApplicationR\fapplications\"@\n" +
	"\x17ComputeNeedScoreRequest\x12%\n" +
	"\x0eapplication_id\x18\x01 \x01(\tR\rapplicationId\"G\n" +
	"\x18ComputeNeedScoreResponse\x12+\n" +
	"\x05score\x18\x01 \x01(\v2\x15.bursary.v1.NeedScoreR\x05score\"8\n" +
	"\x15VerifyDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"P\n" +
	"\x16VerifyDocumentResponse\x126\n" +
	"\x06result\x18\x01 \x01(\v2\x1e.bursary.v1.VerificationResultR\x06result\"\x96\x01\n" +
	"\x18ReviewApplicationRequest\x12%\n" +
	"\x0eapplication_id\x18\x01 \x01(\tR\rapplicationId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1f\n" +
	"\vreviewed_by\x18\x03 \x01(\tR\n" +
	"reviewedBy\x12\x1a\n" +
	"\bcomments\x18\x04 \x01(\tR\bcomments\"V\n" +
	"\x19ReviewApplicationResponse\x129\n" +
	"\vapplication\x18\x01 \x01(\v2\x17.bursary.v1.ApplicationR\vapplication\"T\n" +
	"\x19ExportPriorityListRequest\x12\x16\n" +
	"\x06county\x18\x01 \x01(\tR\x06county\x12\x1f\n" +
	"\voutput_path\x18\x02 \x01(\tR\n" +
	"outputPath\"V\n" +
	"\x1aExportPriorityListResponse\x12\x1b\n" +
	"\tfile_path\x18\x01 \x01(\tR\bfilePath\x12\x1b\n" +
	"\trow_count\x18\x02 \x01(\x05R\browCount\"\x11\n" +
	"\x0fGetStatsRequest\";\n" +
	"\vStatusCount\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x03R\x05count\"d\n" +
	"\vCountyCount\x12\x16\n" +
	"\x06county\x18\x01 \x01(\tR\x06county\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x03R\x05count\x12'\n" +
	"\x0ftotal_requested\x18\x03 \x01(\tR\x0etotalRequested\"\xe2\x03\n" +
	"\x10GetStatsResponse\x12-\n" +
	"\x12total_applications\x18\x01 \x01(\x03R\x11totalApplications\x124\n" +
	"\tby_status\x18\x02 \x03(\v2\x17.bursary.v1.StatusCountR\bbyStatus\x124\n" +
	"\tby_county\x18\x03 \x03(\v2\x17.bursary.v1.CountyCountR\bbyCounty\x124\n" +
	"\x16total_amount_requested\x18\x04 \x01(\tR\x14totalAmountRequested\x12,\n" +
	"\x12average_need_score\x18\x05 \x01(\tR\x10averageNeedScore\x12#\n" +
	"\rflagged_count\x18\x06 \x01(\x03R\fflaggedCount\x12%\n" +
	"\x0everified_count\x18\a \x01(\x03R\rverifiedCount\x12#\n" +
	"\rapproval_rate\x18\b \x01(\tR\fapprovalRate\x12.\n" +
	"\x13avg_processing_days\x18\t \x01(\tR\x11avgProcessingDays\x12.\n" +
	"\x13high_priority_count\x18\n" +
	" \x01(\x03R\x11highPriorityCount2\xcf\x06\n" +
	"\x0eBursaryService\x12`\n" +
	"\x11SubmitApplication\x12$.bursary.v1.SubmitApplicationRequest\x1a%.bursary.v1.SubmitApplicationResponse\x12W\n" +
	"\x0eGetApplication\x12!.bursary.v1.GetApplicationRequest\x1a\".bursary.v1.GetApplicationResponse\x12]\n" +
	"\x10ListApplications\x12#.bursary.v1.ListApplicationsRequest\x1a$.bursary.v1.ListApplicationsResponse\x12]\n" +
	"\x10RankApplications\x12#.bursary.v1.RankApplicationsRequest\x1a$.bursary.v1.RankApplicationsResponse\x12]\n" +
	"\x10ComputeNeedScore\x12#.bursary.v1.ComputeNeedScoreRequest\x1a$.bursary.v1.ComputeNeedScoreResponse\x12W\n" +
	"\x0eVerifyDocument\x12!.bursary.v1.VerifyDocumentRequest\x1a\".bursary.v1.VerifyDocumentResponse\x12`\n" +
	"\x11ReviewApplication\x12$.bursary.v1.ReviewApplicationRequest\x1a%.bursary.v1.ReviewApplicationResponse\x12c\n" +
	"\x12ExportPriorityList\x12%.bursary.v1.ExportPriorityListRequest\x1a&.bursary.v1.ExportPriorityListResponse\x12E\n" +
	"\bGetStats\x12\x1b.bursary.v1.GetStatsRequest\x1a\x1c.bursary.v1.GetStatsResponseBDZBgithub.com/mkiplagat/bursary-intake/gen/proto/bursary/v1;bursarypbb\x06proto3"

var (
	file_bursary_v1_bursary_proto_rawDescOnce sync.Once
	file_bursary_v1_bursary_proto_rawDescData []byte
)

func file_bursary_v1_bursary_proto_rawDescGZIP() []byte {
	file_bursary_v1_bursary_proto_rawDescOnce.Do(func() {
		file_bursary_v1_bursary_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_bursary_v1_bursary_proto_rawDesc), len(file_bursary_v1_bursary_proto_rawDesc)))
	})
	return file_bursary_v1_bursary_proto_rawDescData
}

var file_bursary_v1_bursary_proto_msgTypes = make([]protoimpl.MessageInfo, 27)
var file_bursary_v1_bursary_proto_goTypes = []any{
	(*ApplicantProfile)(nil),           // 0: bursary.v1.ApplicantProfile
	(*Application)(nil),                // 1: bursary.v1.Application
	(*NeedScore)(nil),                  // 2: bursary.v1.NeedScore
	(*RankedApplication)(nil),          // 3: bursary.v1.RankedApplication
	(*FieldMatch)(nil),                 // 4: bursary.v1.FieldMatch
	(*VerificationResult)(nil),         // 5: bursary.v1.VerificationResult
	(*DocumentInput)(nil),              // 6: bursary.v1.DocumentInput
	(*SubmitApplicationRequest)(nil),   // 7: bursary.v1.SubmitApplicationRequest
	(*SubmitApplicationResponse)(nil),  // 8: bursary.v1.SubmitApplicationResponse
	(*GetApplicationRequest)(nil),      // 9: bursary.v1.GetApplicationRequest
	(*GetApplicationResponse)(nil),     // 10: bursary.v1.GetApplicationResponse
	(*ListApplicationsRequest)(nil),    // 11: bursary.v1.ListApplicationsRequest
	(*ListApplicationsResponse)(nil),   // 12: bursary.v1.ListApplicationsResponse
	(*RankApplicationsRequest)(nil),    // 13: bursary.v1.RankApplicationsRequest
	(*RankApplicationsResponse)(nil),   // 14: bursary.v1.RankApplicationsResponse
	(*ComputeNeedScoreRequest)(nil),    // 15: bursary.v1.ComputeNeedScoreRequest
	(*ComputeNeedScoreResponse)(nil),   // 16: bursary.v1.ComputeNeedScoreResponse
	(*VerifyDocumentRequest)(nil),      // 17: bursary.v1.VerifyDocumentRequest
	(*VerifyDocumentResponse)(nil),     // 18: bursary.v1.VerifyDocumentResponse
	(*ReviewApplicationRequest)(nil),   // 19: bursary.v1.ReviewApplicationRequest
	(*ReviewApplicationResponse)(nil),  // 20: bursary.v1.ReviewApplicationResponse
	(*ExportPriorityListRequest)(nil),  // 21: bursary.v1.ExportPriorityListRequest
	(*ExportPriorityListResponse)(nil), // 22: bursary.v1.ExportPriorityListResponse
	(*GetStatsRequest)(nil),            // 23: bursary.v1.GetStatsRequest
	(*StatusCount)(nil),                // 24: bursary.v1.StatusCount
	(*CountyCount)(nil),                // 25: bursary.v1.CountyCount
	(*GetStatsResponse)(nil),           // 26: bursary.v1.GetStatsResponse
}
var file_bursary_v1_bursary_proto_depIdxs = []int32{
	1,  // 0: bursary.v1.RankedApplication.application:type_name -> bursary.v1.Application
	2,  // 1: bursary.v1.RankedApplication.score:type_name -> bursary.v1.NeedScore
	4,  // 2: bursary.v1.VerificationResult.matches:type_name -> bursary.v1.FieldMatch
	0,  // 3: bursary.v1.SubmitApplicationRequest.profile:type_name -> bursary.v1.ApplicantProfile
	1,  // 4: bursary.v1.SubmitApplicationRequest.application:type_name -> bursary.v1.Application
	6,  // 5: bursary.v1.SubmitApplicationRequest.documents:type_name -> bursary.v1.DocumentInput
	1,  // 6: bursary.v1.SubmitApplicationResponse.application:type_name -> bursary.v1.Application
	2,  // 7: bursary.v1.SubmitApplicationResponse.score:type_name -> bursary.v1.NeedScore
	1,  // 8: bursary.v1.GetApplicationResponse.application:type_name -> bursary.v1.Application
	2,  // 9: bursary.v1.GetApplicationResponse.score:type_name -> bursary.v1.NeedScore
	1,  // 10: bursary.v1.ListApplicationsResponse.applications:type_name -> bursary.v1.Application
	3,  // 11: bursary.v1.RankApplicationsResponse.applications:type_name -> bursary.v1.RankedApplication
	2,  // 12: bursary.v1.ComputeNeedScoreResponse.score:type_name -> bursary.v1.NeedScore
	5,  // 13: bursary.v1.VerifyDocumentResponse.result:type_name -> bursary.v1.VerificationResult
	1,  // 14: bursary.v1.ReviewApplicationResponse.application:type_name -> bursary.v1.Application
	24, // 15: bursary.v1.GetStatsResponse.by_status:type_name -> bursary.v1.StatusCount
	25, // 16: bursary.v1.GetStatsResponse.by_county:type_name -> bursary.v1.CountyCount
	7,  // 17: bursary.v1.BursaryService.SubmitApplication:input_type -> bursary.v1.SubmitApplicationRequest
	9,  // 18: bursary.v1.BursaryService.GetApplication:input_type -> bursary.v1.GetApplicationRequest
	11, // 19: bursary.v1.BursaryService.ListApplications:input_type -> bursary.v1.ListApplicationsRequest
	13, // 20: bursary.v1.BursaryService.RankApplications:input_type -> bursary.v1.RankApplicationsRequest
	15, // 21: bursary.v1.BursaryService.ComputeNeedScore:input_type -> bursary.v1.ComputeNeedScoreRequest
	17, // 22: bursary.v1.BursaryService.VerifyDocument:input_type -> bursary.v1.VerifyDocumentRequest
	19, // 23: bursary.v1.BursaryService.ReviewApplication:input_type -> bursary.v1.ReviewApplicationRequest
	21, // 24: bursary.v1.BursaryService.ExportPriorityList:input_type -> bursary.v1.ExportPriorityListRequest
	23, // 25: bursary.v1.BursaryService.GetStats:input_type -> bursary.v1.GetStatsRequest
	8,  // 26: bursary.v1.BursaryService.SubmitApplication:output_type -> bursary.v1.SubmitApplicationResponse
	10, // 27: bursary.v1.BursaryService.GetApplication:output_type -> bursary.v1.GetApplicationResponse
	12, // 28: bursary.v1.BursaryService.ListApplications:output_type -> bursary.v1.ListApplicationsResponse
	14, // 29: bursary.v1.BursaryService.RankApplications:output_type -> bursary.v1.RankApplicationsResponse
	16, // 30: bursary.v1.BursaryService.ComputeNeedScore:output_type -> bursary.v1.ComputeNeedScoreResponse
	18, // 31: bursary.v1.BursaryService.VerifyDocument:output_type -> bursary.v1.VerifyDocumentResponse
	20, // 32: bursary.v1.BursaryService.ReviewApplication:output_type -> bursary.v1.ReviewApplicationResponse
	22, // 33: bursary.v1.BursaryService.ExportPriorityList:output_type -> bursary.v1.ExportPriorityListResponse
	26, // 34: bursary.v1.BursaryService.GetStats:output_type -> bursary.v1.GetStatsResponse
	26, // [26:35] is the sub-list for method output_type
	17, // [17:26] is the sub-list for method input_type
	17, // [17:17] is the sub-list for extension type_name
	17, // [17:17] is the sub-list for extension extendee
	0,  // [0:17] is the sub-list for field type_name
}

func init() { file_bursary_v1_bursary_proto_init() }
func file_bursary_v1_bursary_proto_init() {
	if File_bursary_v1_bursary_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_bursary_v1_bursary_proto_rawDesc), len(file_bursary_v1_bursary_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   27,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_bursary_v1_bursary_proto_goTypes,
		DependencyIndexes: file_bursary_v1_bursary_proto_depIdxs,
		MessageInfos:      file_bursary_v1_bursary_proto_msgTypes,
	}.Build()
	File_bursary_v1_bursary_proto = out.File
	file_bursary_v1_bursary_proto_goTypes = nil
	file_bursary_v1_bursary_proto_depIdxs = nil
}
