// Package importer implements the spreadsheet import pipeline: header
// normalization, fuzzy header-to-field matching, positional column mapping,
// row materialization, required-field validation and duplicate-batch
// detection. The matcher operates on declarative alias and keyword tables so
// the precedence ladder and the data it walks stay independently testable.
package importer

// Field is one named slot in the prospect record shape used as an import
// target. The set is closed; candidate records are keyed by Field so a typo
// in a field name is a compile error, not a silent mismatch.
type Field string

// Schema fields, in catalog order.
const (
	FieldFullName         Field = "fullName"
	FieldAddress          Field = "address"
	FieldMobile           Field = "mobile"
	FieldBloodGroup       Field = "bloodgroup"
	FieldAadharNumber     Field = "aadharNumber"
	FieldDOB              Field = "dob"
	FieldAge              Field = "age"
	FieldGuardianName     Field = "guardianName"
	FieldBadgeID          Field = "badgeId"
	FieldGender           Field = "gender"
	FieldBadgeStatus      Field = "badgeStatus"
	FieldEmergencyContact Field = "emergencyContact"
	FieldDepartment       Field = "department"
	FieldMaritalStatus    Field = "maritalStatus"
	FieldLocality         Field = "locality"
	FieldAssignedTo       Field = "assignedTo"
	FieldInitiationDate   Field = "initiationDate"
	FieldInitiatedBy      Field = "initiatedBy"
	FieldInitiationPlace  Field = "initiationPlace"
	FieldIsInitiated      Field = "isInitiated"
)

// Unmapped marks a column the matcher could not resolve.
const Unmapped Field = ""

// fieldSpec describes one catalog entry: the target field, whether an import
// cannot proceed without it, and the alias tokens (already in normalized
// alphanumeric form) known to refer to it in manually created spreadsheets.
type fieldSpec struct {
	field    Field
	required bool
	aliases  []string
}

// catalog is the ordered schema field catalog. Order matters: the matcher
// walks it front to back within each tier, so earlier fields win ties.
var catalog = []fieldSpec{
	{FieldFullName, true, []string{"name", "fullname", "prospectname", "sangatname"}},
	{FieldAddress, false, []string{"address", "addr", "homeaddress", "residentialaddress"}},
	{FieldMobile, true, []string{"mobile", "mobileno", "mobilenumber", "phone", "phoneno", "phonenumber", "contactno", "contactnumber", "whatsappno"}},
	{FieldBloodGroup, false, []string{"bloodgroup", "bloodgrp", "bg"}},
	{FieldAadharNumber, false, []string{"aadhar", "aadharno", "aadharnumber", "aadharcard", "aadhaar", "aadhaarno", "aadhaarcard"}},
	{FieldDOB, false, []string{"dob", "dateofbirth", "birthdate"}},
	{FieldAge, false, []string{"age"}},
	{FieldGuardianName, false, []string{"guardianname", "guardian", "fathername", "fathersname", "husbandname", "sodwo"}},
	{FieldBadgeID, false, []string{"badgeid", "badgeno", "badgenumber", "batch", "batchno", "batchnum", "batchnumber"}},
	{FieldGender, false, []string{"gender", "sex"}},
	{FieldBadgeStatus, false, []string{"badgestatus", "status", "category", "prospectstatus"}},
	{FieldEmergencyContact, false, []string{"emergencycontact", "emergencyno", "emergencynumber", "alternateno", "alternatenumber"}},
	{FieldDepartment, false, []string{"department", "dept", "seva", "sevadept"}},
	{FieldMaritalStatus, false, []string{"maritalstatus", "married"}},
	{FieldLocality, false, []string{"locality", "area", "village", "city", "town"}},
	{FieldAssignedTo, false, []string{"assignedto", "assigned", "assignee", "assignment", "caller", "allottedto"}},
	{FieldInitiationDate, false, []string{"initiationdate", "naamdandate"}},
	{FieldInitiatedBy, false, []string{"initiatedby", "naamdanby"}},
	{FieldInitiationPlace, false, []string{"initiationplace", "naamdanplace"}},
	{FieldIsInitiated, false, []string{"isinitiated", "initiated", "naamdantaken"}},
}

// keywordRules binds domain keywords to fields for the substring tier.
// Ordered most to least specific; first containment wins.
var keywordRules = []struct {
	keyword string
	field   Field
}{
	{"dateofnaamdan", FieldInitiationDate},
	{"naamdandate", FieldInitiationDate},
	{"dateofinitiation", FieldInitiationDate},
	{"initiationdate", FieldInitiationDate},
	{"initiatedby", FieldInitiatedBy},
	{"naamdanby", FieldInitiatedBy},
	{"initiationplace", FieldInitiationPlace},
	{"placeofinitiation", FieldInitiationPlace},
	{"naamdanplace", FieldInitiationPlace},
	{"naamdan", FieldIsInitiated},
}

// Fields returns all schema fields in catalog order.
func Fields() []Field {
	fields := make([]Field, len(catalog))
	for i, spec := range catalog {
		fields[i] = spec.field
	}
	return fields
}

// RequiredFields returns the subset of fields an import cannot proceed
// without, in catalog order.
func RequiredFields() []Field {
	var required []Field
	for _, spec := range catalog {
		if spec.required {
			required = append(required, spec.field)
		}
	}
	return required
}

// Aliases returns the alias tokens for a field. Used by tests to assert the
// exact-match tier is sound for every alias in the catalog.
func Aliases(field Field) []string {
	for _, spec := range catalog {
		if spec.field == field {
			return append([]string(nil), spec.aliases...)
		}
	}
	return nil
}
