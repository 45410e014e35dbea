package client

type Client struct {
	CN    int32
	Name  string
	Bot   bool
	InUse bool
}

func newClient(cn int32, name string, bot bool) *Client {
	return &Client{
		CN:    cn,
		Name:  name,
		Bot:   bot,
		InUse: true,
	}
}
