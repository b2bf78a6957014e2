package appstate

// Tab identifies one of the top-level application tabs.
type Tab string

const (
	TabHome    Tab = "home"
	TabCatalog Tab = "catalog"
	TabAR      Tab = "ar_preview"
	TabStores  Tab = "stores"
	TabProfile Tab = "profile"
)

func (t Tab) Valid() bool {
	switch t {
	case TabHome, TabCatalog, TabAR, TabStores, TabProfile:
		return true
	}
	return false
}

// DisplayName returns the tab bar label
func (t Tab) DisplayName() string {
	switch t {
	case TabHome:
		return "HOME"
	case TabCatalog:
		return "CATALOG"
	case TabAR:
		return "AR PREVIEW"
	case TabStores:
		return "STORES"
	case TabProfile:
		return "PROFILE"
	default:
		return string(t)
	}
}

// TabState holds the selected top-level tab. Selection changes only
// through Select events.
type TabState struct {
	Selected Tab `json:"selected"`
}

func NewTabState() *TabState {
	return &TabState{Selected: TabHome}
}

// Select switches to the given tab.
func (s *TabState) Select(t Tab) error {
	if !t.Valid() {
		return ErrInvalidTab
	}
	s.Selected = t
	return nil
}
