package pinot

import "strings"

type tablesResponse struct {
	Tables []string `json:"tables"`
}

type instancesResponse struct {
	Instances []string `json:"instances"`
}

type TableSize struct {
	TableName            string `json:"tableName"`
	ReportedSizeInBytes  int64  `json:"reportedSizeInBytes"`
	EstimatedSizeInBytes int64  `json:"estimatedSizeInBytes"`
}

// InstanceRole derives the role of an instance from its helix id, e.g. Server_host_8098.
func InstanceRole(instance string) string {
	role, _, found := strings.Cut(instance, "_")
	if !found {
		return "Unknown"
	}

	switch role {
	case "Broker", "Server", "Controller", "Minion":
		return role
	default:
		return "Unknown"
	}
}

// TableType derives the table type from a physical table name, e.g. orders_OFFLINE.
func TableType(table string) string {
	switch {
	case strings.HasSuffix(table, "_OFFLINE"):
		return "OFFLINE"
	case strings.HasSuffix(table, "_REALTIME"):
		return "REALTIME"
	default:
		return "LOGICAL"
	}
}
