package logging

// Common log field names.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldType      = "type"
	FieldPort      = "port"
	FieldSignal    = "signal"
	FieldFilm      = "film"
	FieldUser      = "user"
	FieldReview    = "review"
	FieldOperation = "op"
	FieldDriver    = "driver"
)
