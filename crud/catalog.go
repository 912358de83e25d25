package crud

// Default action identifiers.
const (
	GetRequest = "getRequest"
	GetSuccess = "getSuccess"
	GetFailure = "getFailure"
	GetReset   = "getReset"

	GetOneRequest    = "getOneRequest"
	GetOneSuccess    = "getOneSuccess"
	GetOneFailure    = "getOneFailure"
	GetOneReset      = "getOneReset"
	GetOneCreateFrom = "getOneCreateFrom"
	GetOneUpdateFrom = "getOneUpdateFrom"
	GetOneRemoveFrom = "getOneRemoveFrom"
	GetOneFromState  = "getOneFromState"

	CreateRequest = "createRequest"
	CreateSuccess = "createSuccess"
	CreateFailure = "createFailure"
	CreateReset   = "createReset"

	UpdateRequest = "updateRequest"
	UpdateSuccess = "updateSuccess"
	UpdateFailure = "updateFailure"
	UpdateReset   = "updateReset"

	RemoveRequest = "removeRequest"
	RemoveSuccess = "removeSuccess"
	RemoveFailure = "removeFailure"
	RemoveReset   = "removeReset"

	Reset = "reset"
)

// defaultFields are the positional fields of the default creators. Consumers
// depend on these names, do not change them.
var defaultFields = map[string][]string{
	GetRequest: nil,
	GetSuccess: {"results"},
	GetFailure: {"error"},
	GetReset:   nil,

	GetOneRequest:    {"id"},
	GetOneSuccess:    {"id", "result", "noResolve"},
	GetOneFailure:    {"id", "error"},
	GetOneReset:      nil,
	GetOneCreateFrom: {"newElement", "property", "customFilter"},
	GetOneUpdateFrom: {"newElement", "property"},
	GetOneRemoveFrom: {"id", "property"},
	GetOneFromState:  {"id", "path"},

	CreateRequest: {"data"},
	CreateSuccess: {"result"},
	CreateFailure: {"error"},
	CreateReset:   nil,

	UpdateRequest: {"id", "data"},
	UpdateSuccess: {"result"},
	UpdateFailure: {"error"},
	UpdateReset:   nil,

	RemoveRequest: {"id", "data"},
	RemoveSuccess: {"id"},
	RemoveFailure: {"error"},
	RemoveReset:   nil,

	Reset: nil,
}

// DefaultFields returns the field names of a default creator.
func DefaultFields(identifier string) ([]string, bool) {
	fields, ok := defaultFields[identifier]
	if !ok {
		return nil, false
	}

	return append([]string(nil), fields...), true
}

// Operations selects the default operation families.
type Operations struct {
	Get    bool
	GetOne bool
	Create bool
	Update bool
	Remove bool
	Reset  bool
}

func AllOperations() Operations {
	return Operations{Get: true, GetOne: true, Create: true, Update: true, Remove: true, Reset: true}
}

func (o Operations) Any() bool {
	return o.Get || o.GetOne || o.Create || o.Update || o.Remove || o.Reset
}

func cycle(family string) []string {
	return []string{family + "Request", family + "Success", family + "Failure", family + "Reset"}
}

// Identifiers lists the default action identifiers of the selected families
// in canonical order.
func (o Operations) Identifiers() []string {
	var identifiers []string

	if o.Get {
		identifiers = append(identifiers, cycle("get")...)
	}
	if o.GetOne {
		identifiers = append(identifiers, cycle("getOne")...)
		identifiers = append(identifiers, GetOneCreateFrom, GetOneUpdateFrom, GetOneRemoveFrom, GetOneFromState)
	}
	if o.Create {
		identifiers = append(identifiers, cycle("create")...)
	}
	if o.Update {
		identifiers = append(identifiers, cycle("update")...)
	}
	if o.Remove {
		identifiers = append(identifiers, cycle("remove")...)
	}
	if o.Reset {
		identifiers = append(identifiers, Reset)
	}

	return identifiers
}
