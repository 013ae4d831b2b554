package social

// Record is the shape an ingestion source produces for each person.
type Record struct {
	ID         int    `json:"id" validate:"gte=0"`
	Name       string `json:"name" validate:"required,max=200"`
	Age        int    `json:"age" validate:"gte=0,lte=150"`
	Gender     string `json:"gender" validate:"max=50"`
	Occupation string `json:"occupation" validate:"max=200"`
	Friends    []int  `json:"friends" validate:"dive,gte=0"`
}

// Person converts the record into a new Person.
func (r Record) Person() *Person {
	return NewPerson(r.ID, r.Name, r.Age, r.Gender, r.Occupation, r.Friends)
}
