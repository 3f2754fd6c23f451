package linkedin

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// FieldKind tells the extractor how to coerce a located JSON value.
type FieldKind int

// Field kinds for FieldMapping.
const (
	// FieldString coerces the value to its string form.
	FieldString FieldKind = iota

	// FieldNumber coerces the value to an integer.
	FieldNumber

	// FieldRaw keeps the raw JSON value (used for array-valued fields
	// such as a company's specialities).
	FieldRaw
)

// FieldMapping binds one output column to a path inside an entity record.
type FieldMapping struct {
	Column string
	Path   string // gjson path, e.g. "headquarter.address.city"
	Kind   FieldKind
}

// Variant is a field extractor configured for one entity kind. The person
// and company extractors share all machinery and differ only in their
// mapping tables.
type Variant struct {
	Name     string
	Mappings []FieldMapping
}

// Columns returns the output column names in mapping order.
func (v Variant) Columns() []string {
	cols := make([]string, len(v.Mappings))
	for i, m := range v.Mappings {
		cols[i] = m.Column
	}
	return cols
}

// Extract flattens one entity record into a row. Missing or null source
// fields, at any depth, yield a nil value; extraction never fails.
func (v Variant) Extract(rec EntityRecord) Row {
	row := Row{
		Columns: v.Columns(),
		Values:  make([]any, len(v.Mappings)),
	}
	for i, m := range v.Mappings {
		res := gjson.Get(string(rec), m.Path)
		if !res.Exists() || res.Type == gjson.Null {
			continue
		}
		switch m.Kind {
		case FieldNumber:
			row.Values[i] = res.Int()
		case FieldRaw:
			row.Values[i] = json.RawMessage(res.Raw)
		default:
			row.Values[i] = res.String()
		}
	}
	return row
}

// PersonVariant extracts rows from people search result pages.
var PersonVariant = Variant{
	Name: "person",
	Mappings: []FieldMapping{
		{Column: "name", Path: "title.text", Kind: FieldString},
		{Column: "subtitle", Path: "primarySubtitle.text", Kind: FieldString},
		{Column: "position", Path: "summary.text", Kind: FieldString},
		{Column: "linkedinUrl", Path: "bserpEntityNavigationalUrl", Kind: FieldString},
	},
}

// CompanyVariant extracts rows from company about pages.
var CompanyVariant = Variant{
	Name: "company",
	Mappings: []FieldMapping{
		{Column: "name", Path: "name", Kind: FieldString},
		{Column: "tagline", Path: "tagline", Kind: FieldString},
		{Column: "description", Path: "description", Kind: FieldString},
		{Column: "websiteUrl", Path: "websiteUrl", Kind: FieldString},
		{Column: "foundedOn", Path: "foundedOn.year", Kind: FieldNumber},
		{Column: "headquarterCity", Path: "headquarter.address.city", Kind: FieldString},
		{Column: "headquarterCountry", Path: "headquarter.address.country", Kind: FieldString},
		{Column: "geographicArea", Path: "headquarter.address.geographicArea", Kind: FieldString},
		{Column: "phone", Path: "phone.number", Kind: FieldString},
		{Column: "specialities", Path: "specialities", Kind: FieldRaw},
		{Column: "employeeCountRangeStart", Path: "employeeCountRange.start", Kind: FieldNumber},
		{Column: "employeeCountRangeEnd", Path: "employeeCountRange.end", Kind: FieldNumber},
	},
}
