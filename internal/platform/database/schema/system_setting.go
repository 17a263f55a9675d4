package schema

// SystemSettingTable represents the 'system.setting' table (branding values).
type SystemSettingTable struct {
	Table     string
	Key       string
	Value     string
	UpdatedBy string
	UpdatedAt string
}

// SystemSetting is the schema definition for system.setting
var SystemSetting = SystemSettingTable{
	Table:     "system.setting",
	Key:       "key",
	Value:     "value",
	UpdatedBy: "updatedby",
	UpdatedAt: "updatedat",
}
