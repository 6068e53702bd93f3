package store

import (
	"database/sql"
	"strconv"
)

// Row kinds of the data table. Every data row carries exactly one kind tag;
// the generic columns are interpreted per kind.
const (
	KindName            = "name"
	KindEmail           = "email"
	KindPhone           = "phone"
	KindPostal          = "postal"
	KindURL             = "url"
	KindOrganization    = "org"
	KindNote            = "note"
	KindEvent           = "event"
	KindGroupMembership = "group"
	KindPhoto           = "photo"
)

// Generic data column layout per kind:
//
//	name:   data1 given, data2 family, data3 middle, data4 prefix, data5 suffix
//	email:  data1 value, data2 type code, data3 label
//	phone:  data1 value, data2 type code, data3 label
//	url:    data1 value, data2 type code, data3 label
//	postal: data2 type code, data3 label, data4 street, data5 city,
//	        data6 region, data7 postal code, data8 country, data9 neighborhood
//	org:    data1 company, data4 job title
//	note:   data1 note
//	event:  data1 start date "month-day[-year]", data2 event subtype code
//	group:  data1 group row id
//	photo:  blob_data photo bytes
const (
	colData1 = "data1"
	colData2 = "data2"
	colData3 = "data3"
	colData4 = "data4"
	colData5 = "data5"
	colData6 = "data6"
	colData7 = "data7"
	colData8 = "data8"
	colData9 = "data9"
)

// eventSubtypeBirthday is the data2 value that marks a generic date event as
// a birthday. Other event subtypes are ignored by the assembler.
const eventSubtypeBirthday = 3

// dataRow is the scan target for one kind-tagged row. All generic columns
// are nullable; the assembler interprets them per kind.
type dataRow struct {
	Kind      string
	Data      [9]sql.NullString
	IsPrimary bool
	Blob      []byte
}

func (r *dataRow) scanTargets() []any {
	return []any{
		&r.Kind,
		&r.Data[0], &r.Data[1], &r.Data[2],
		&r.Data[3], &r.Data[4], &r.Data[5],
		&r.Data[6], &r.Data[7], &r.Data[8],
		&r.IsPrimary,
		&r.Blob,
	}
}

// str returns the 1-based generic column as a *string, nil when NULL.
func (r *dataRow) str(n int) *string {
	v := r.Data[n-1]
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

// typeCode parses the 1-based generic column as an integer type code.
// A NULL or malformed value yields fallback; the type mapper's totality
// turns that into the OTHER label downstream.
func (r *dataRow) typeCode(n int, fallback int) int {
	v := r.Data[n-1]
	if !v.Valid {
		return fallback
	}
	code, err := strconv.Atoi(v.String)
	if err != nil {
		return fallback
	}
	return code
}
