package entities

type SidebarState string

const (
	SidebarInitial                  SidebarState = "INITIAL"
	SidebarList                     SidebarState = "LIST"
	SidebarSearching                SidebarState = "SEARCHING"
	SidebarDetails                  SidebarState = "DETAILS"
	SidebarErrorNotFound            SidebarState = "ERROR_NOT_FOUND"
	SidebarErrorCouldNotGetLocation SidebarState = "ERROR_COULD_NOT_GET_LOCATION"
)

func (s SidebarState) IsError() bool {
	return s == SidebarErrorNotFound || s == SidebarErrorCouldNotGetLocation
}

func (s SidebarState) String() string {
	return string(s)
}

type MapStatus string

const (
	ShowMap MapStatus = "SHOW_MAP"
	HideMap MapStatus = "HIDE_MAP"
)
