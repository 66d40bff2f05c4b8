package model

import "strconv"

// Employee is the only entity of the service. ID is assigned by storage on
// first save and is zero before that.
type Employee struct {
	ID        int64  `json:"id,omitempty" db:"id"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
}

// EmployeeRequest is the body accepted by create and update. Any id sent by
// the client is ignored.
type EmployeeRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// ToEmployee builds an unsaved Employee from the request
func (r *EmployeeRequest) ToEmployee() *Employee {
	return &Employee{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}

// ApplyTo overwrites the mutable fields of e, leaving its ID untouched
func (r *EmployeeRequest) ApplyTo(e *Employee) {
	e.FirstName = r.FirstName
	e.LastName = r.LastName
	e.Email = r.Email
}

// CacheKey returns the cache key for an employee id
func CacheKey(id int64) string {
	return "employee:" + strconv.FormatInt(id, 10)
}
