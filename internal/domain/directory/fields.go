package directory

// ApplyPartial overlays the supplied fields of req onto emp. Empty
// strings, zero numbers and nil pointers are skipped, so a field the
// client omitted (or sent blank) never clobbers the stored value.
func ApplyPartial(emp *Employee, req UpdateRequest) {
	if req.Name != "" {
		emp.Name = req.Name
	}
	if req.Email != "" {
		emp.Email = req.Email
	}
	if req.Phone != "" {
		emp.Phone = req.Phone
	}
	if req.Photo != "" {
		emp.Photo = req.Photo
	}
	if req.Address != "" {
		emp.Address = req.Address
	}
	if req.FatherName != "" {
		emp.FatherName = req.FatherName
	}
	if req.Experience != 0 {
		emp.Experience = req.Experience
	}
	if req.LastSalary != nil && *req.LastSalary != 0 {
		emp.LastSalary = req.LastSalary
	}
	if req.EmergencyNumber != "" {
		emp.EmergencyNumber = req.EmergencyNumber
	}
	if req.EmergencyContactName != "" {
		emp.EmergencyContactName = req.EmergencyContactName
	}
	if req.EmergencyRelation != "" {
		emp.EmergencyRelation = req.EmergencyRelation
	}
}
