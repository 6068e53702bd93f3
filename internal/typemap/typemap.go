// Package typemap translates between the symbolic type labels used on the
// aggregate contact surface (HOME, WORK, MOBILE, ...) and the integer type
// codes the row store persists, one closed label set per field kind.
//
// Both directions are total: an unknown code maps to the OTHER label and an
// unknown label maps to the kind's OTHER code, so the mapper can never fail.
// The tables are plain data; a construction-time check (exercised by tests)
// asserts that every declared code has a reverse mapping.
package typemap

// Symbolic labels shared across kinds. Each kind owns its own closed set;
// sharing the constant does not mean sharing the code.
const (
	LabelHome        = "HOME"
	LabelWork        = "WORK"
	LabelMobile      = "MOBILE"
	LabelMain        = "MAIN"
	LabelHomeFax     = "HOME_FAX"
	LabelWorkFax     = "WORK_FAX"
	LabelOtherFax    = "OTHER_FAX"
	LabelPager       = "PAGER"
	LabelCar         = "CAR"
	LabelCallback    = "CALLBACK"
	LabelCompanyMain = "COMPANY_MAIN"
	LabelAssistant   = "ASSISTANT"
	LabelBlog        = "BLOG"
	LabelProfile     = "PROFILE"
	LabelFTP         = "FTP"
	LabelCustom      = "CUSTOM"
	LabelOther       = "OTHER"
)

// Mapping is the bidirectional code/label table for one field kind.
type Mapping struct {
	kind       string
	codeToSpec map[int]string
	specToCode map[string]int
	otherCode  int
	customCode int
}

func newMapping(kind string, table map[int]string, otherCode, customCode int) *Mapping {
	reverse := make(map[string]int, len(table))
	for code, label := range table {
		reverse[label] = code
	}
	return &Mapping{
		kind:       kind,
		codeToSpec: table,
		specToCode: reverse,
		otherCode:  otherCode,
		customCode: customCode,
	}
}

// Kind returns the field kind this mapping belongs to.
func (m *Mapping) Kind() string { return m.kind }

// Label returns the symbolic label for a stored type code.
// Unknown codes yield OTHER.
func (m *Mapping) Label(code int) string {
	if label, ok := m.codeToSpec[code]; ok {
		return label
	}
	return LabelOther
}

// Code returns the stored type code for a symbolic label.
// Unknown labels yield the kind's OTHER code.
func (m *Mapping) Code(label string) int {
	if code, ok := m.specToCode[label]; ok {
		return code
	}
	return m.otherCode
}

// IsCustom reports whether code is the kind's CUSTOM code. Only custom-typed
// entries surface a stored label on read.
func (m *Mapping) IsCustom(code int) bool { return code == m.customCode }

// CustomCode returns the kind's CUSTOM code.
func (m *Mapping) CustomCode() int { return m.customCode }

// OtherCode returns the kind's OTHER code.
func (m *Mapping) OtherCode() int { return m.otherCode }

// Codes returns every code the kind declares. Used by the completeness test.
func (m *Mapping) Codes() []int {
	codes := make([]int, 0, len(m.codeToSpec))
	for code := range m.codeToSpec {
		codes = append(codes, code)
	}
	return codes
}

// Labels returns every label the kind declares.
func (m *Mapping) Labels() []string {
	labels := make([]string, 0, len(m.specToCode))
	for label := range m.specToCode {
		labels = append(labels, label)
	}
	return labels
}

// Per-kind tables. The integer codes follow the row store's persisted
// representation; they are not interchangeable between kinds.
var (
	// Email maps email type codes. CUSTOM=0, HOME=1, WORK=2, OTHER=3, MOBILE=4.
	Email = newMapping("email", map[int]string{
		0: LabelCustom,
		1: LabelHome,
		2: LabelWork,
		3: LabelOther,
		4: LabelMobile,
	}, 3, 0)

	// Phone maps phone type codes; the phone label set is a superset of the
	// email set.
	Phone = newMapping("phone", map[int]string{
		0:  LabelCustom,
		1:  LabelHome,
		2:  LabelMobile,
		3:  LabelWork,
		4:  LabelWorkFax,
		5:  LabelHomeFax,
		6:  LabelPager,
		7:  LabelOther,
		8:  LabelCallback,
		9:  LabelCar,
		10: LabelCompanyMain,
		12: LabelMain,
		13: LabelOtherFax,
		19: LabelAssistant,
	}, 7, 0)

	// Postal maps structured postal address type codes.
	Postal = newMapping("postal", map[int]string{
		0: LabelCustom,
		1: LabelHome,
		2: LabelWork,
		3: LabelOther,
	}, 3, 0)

	// URL maps website type codes.
	URL = newMapping("url", map[int]string{
		0: LabelCustom,
		2: LabelBlog,
		3: LabelProfile,
		4: LabelHome,
		5: LabelWork,
		6: LabelFTP,
		7: LabelOther,
	}, 7, 0)
)
