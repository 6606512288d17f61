package response

// Envelope is the common success shape: a message plus a data payload.
// Data is always emitted, even when null (get-route for an unknown id).
type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// IDData carries a newly created identifier inside an Envelope.
type IDData struct {
	ID int64 `json:"id"`
}

// ChangesResponse reports how many rows an update or delete touched.
type ChangesResponse struct {
	Message string `json:"message"`
	Changes int64  `json:"changes"`
}

func Success(data any) Envelope {
	return Envelope{Message: "success", Data: data}
}
