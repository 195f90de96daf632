package version

// PythonUpVersion is the current release of PythonUp.
var PythonUpVersion = "0.5.0"
