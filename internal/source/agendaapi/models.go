package agendaapi

// talkRecord is the wire shape of one talks row with its speaker
// embedded by the backend join.
type talkRecord struct {
	ID          string         `json:"id"`
	Day         string         `json:"day"`
	Time        string         `json:"time"`
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	Site        *string        `json:"site"`
	Link        *string        `json:"link"`
	Speaker     *speakerRecord `json:"speaker"`
}

type speakerRecord struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Photo *string `json:"photo"`
}
