package mongo

const (
	store             = "workopt"
	employeeTable     = "employee"
	taskTable         = "task"
	optimizationTable = "optimization"
)

var indexData = []IndexData{
	newIndexData(employeeTable, "employeeId", true),
	newIndexData(taskTable, "taskId", true),
	newIndexData(optimizationTable, "ID", true),
	newIndexData(optimizationTable, "started", false)}
