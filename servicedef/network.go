package servicedef

// Error codes returned by peach-network when it is asked about a network it does not know.
// The probe relies on these for its assertion-mode checks.
const (
	ErrCodeNetworkIDNotFound int64 = -32026
	ErrCodeConnectFailed     int64 = -32027
	ErrCodeForgetFailed      int64 = -32028
	ErrCodeDisableFailed     int64 = -32029
)

// Scan is one access point found by peach-network's available_networks.
type Scan struct {
	Frequency   string `json:"frequency"`
	Protocol    string `json:"protocol"`
	SignalLevel string `json:"signal_level"`
	SSID        string `json:"ssid"`
}

// SavedNetwork is a network configuration stored by wpa_supplicant.
type SavedNetwork struct {
	SSID string `json:"ssid"`
}

// Status describes the current connection of an interface.
type Status struct {
	Address     *string `json:"address"`
	Freq        *string `json:"freq"`
	GroupCipher *string `json:"group_cipher"`
	Mode        *string `json:"mode"`
	NetworkID   *string `json:"network_id"`
	SSID        *string `json:"ssid"`
	WPAState    *string `json:"wpa_state"`
}

type Traffic struct {
	Received    uint64  `json:"received"`
	Transmitted uint64  `json:"transmitted"`
	RxUnit      *string `json:"rx_unit,omitempty"`
	TxUnit      *string `json:"tx_unit,omitempty"`
}
