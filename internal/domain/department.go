package domain

// Department is one of the fixed organizational units that own tickets.
type Department string

const (
	DepartmentIT          Department = "TI"
	DepartmentTelesales   Department = "Televendas"
	DepartmentFinance     Department = "Financeiro"
	DepartmentLossPrevent Department = "Prevenção de Perdas"
	DepartmentPersonnel   Department = "Departamento Pessoal"
	DepartmentCommercial  Department = "Comercial"
	DepartmentMarketing   Department = "Marketing"
)

// Departments lists every department in display order.
var Departments = []Department{
	DepartmentIT,
	DepartmentTelesales,
	DepartmentFinance,
	DepartmentLossPrevent,
	DepartmentPersonnel,
	DepartmentCommercial,
	DepartmentMarketing,
}

// Valid reports whether d is a known department.
func (d Department) Valid() bool {
	for _, known := range Departments {
		if d == known {
			return true
		}
	}
	return false
}
