package models

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Site{},
		&Child{},
		&Session{},
		&Attendance{},
		&ImportLog{},
		&HomeVisit{},
		&Assessment{},
	}
}
