package person

// Person is the only record type served by the API.
type Person struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Age  uint32 `json:"age"`
}
