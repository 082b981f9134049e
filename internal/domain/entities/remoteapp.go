package entities

// RemoteApp is one entry in the remote device-management inventory matching
// a tracking ID. Multiple entries may share a tracking ID (duplicate or
// legacy uploads); all of them are candidates for removal.
type RemoteApp struct {
	ID             string
	DisplayName    string
	PrimaryVersion string
}
