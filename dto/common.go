package dto

type PageQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Normalize clamps page and limit to sane bounds.
func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}
}

func (q PageQuery) Offset() int { return (q.Page - 1) * q.Limit }
