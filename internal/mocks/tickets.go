package mocks

import "github.com/soireehq/soiree-api/internal/models"

// QRCodePlaceholder is the fixed payload returned by QR generation. A real
// deployment would render a per-ticket code server-side.
const QRCodePlaceholder = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAIQAAACECAYAAABRRIOnAAAAAklEQVR4AewaftIAAAOPSURBVO3BQY4cSRLAQDLQ//8yV0c/JZCoain2xgj+wRj/OMYKx1jjGGscY41jrHGMNY6xxjHWOMYax1jjGGscY41jrHGMNY6xxjHWuHg4kfxNFU8kU8UTSU8xJVMVTyR/U8WTY6xxjDWOscbFl1XxTZKniieSnmJKpormm0m+qeKbjrHGMdY4xhoXPyaZKp5IpooeyVTRJFNFj2Sq6JH0FD2SqaJH8pOKn3SMNY6xxjHWuPhlkqmiR9JU9Eh6iieSnqJJpooeSU/xm0l+02OscYw1jrHGxS+T9BQ9kp6iSaYqeiRTRZNMFU0yVTTJVNEkeYqf9BhrHGONY6xx8WOSv6miR9JTNMlU0STTX5L8TcdY4xhrHGONiy+r+E2SnqJJpooeSU/RJD1Fk0wVTyRTxZNkqvimY6xxjDWOscbFw4nkJ1X0SHqKJpkqeiRTRY+kp2iSqaJH0lM0yVTRJFPFk2Sq+EnHWOMYaxxjjYt/XEWTTBVNMlU0yVTRJFNFk0wVTTJV9Eimih5JT9Ek/0/HWOMYaxxjjYuHE0lP0SRTRY+kp2iSqaJJpooeSU/RJFNFk0wVTTJVNMlU0SRTRY+kp2iSqeKbjrHGMdY4xhoXDyeSqaJH0lM0yVTRJFNFk/QUTTJVNMlU0SRTRY+kp2iSqaJJpooeSU/RJD1Fk0wVT46xxjHWOMYaFw8nkp6iSaaKJukpmmSqaJKpokl6iiaZKppkqmiSqaJJpooeSU/RJD1Fk0wVTTJV9Eh6im86xhrHWOMYa1z8WEWTTBVNMlU0yVTRJFNFk0wVTTJV9Eh6iiaZKnokU0WTTBU9kp6iSaaKJpkqeiRTxZNjrHGMNY6xxsXDiWSquKtokqmiSaaKJpkqmmSqaJKpokmmih5JT9EkU0WTTBU9kp6iSaaKJpkqnhxjjWOscYw1Lh5OJH9TRY+kp2iSqaJJpooeSU/RJD1Fk0wVTTJV9Eimih5JT9EkU8U3HWONYyxwjDUuvqyKb5L0FE0yVTTJVNEkU0WTTBU9kp6iSaaKJpkqeiRTRZNMFU+SqeKbjrHGMdY4xhoXPyaZKp5IpooeSU/RJD1Fk0wVPZKpokl6iiaZKnokPUWTTBU/6RhrHGONY6xx8cskU0WPpKdokqmiR9JTNMlU0SRTRY+kp2iSqaJH0lP8pGOscYw1jrHGxS+T9BRNMlU0yVTRI+kpmmSqaJKpokl6iiaZKppkqmiSqeInHWONY6xxjDUufkzym1X0SHqKJpkqeiQ9RZP0FE0yVTTJVPEkmSq+6RhrHGONY6xx8WUV/0+SnqJJpooeSU/RJD1Fk0wVTTJVNMlU8U3HWOMYaxxjjX/8A/u/URgJzKYnAAAAAElFTkSuQmCC"

var Tickets = []models.Ticket{
	{
		ID:            "1",
		EventID:       "1",
		EventTitle:    "Summer Night Soiree",
		EventDate:     "2025-06-15",
		EventTime:     "21:00 - 03:00",
		EventLocation: "Skyline Penthouse, Miami",
		UserID:        "1",
		PurchaseDate:  "2025-05-20",
		Price:         150,
		Status:        models.TicketApproved,
		QRCode:        QRCodePlaceholder,
	},
	{
		ID:            "2",
		EventID:       "2",
		EventTitle:    "Masquerade Mystery",
		EventDate:     "2025-07-22",
		EventTime:     "22:00 - 04:00",
		EventLocation: "The Secret Garden, Los Angeles",
		UserID:        "1",
		PurchaseDate:  "2025-05-15",
		Price:         200,
		Status:        models.TicketPending,
	},
}

var HostRequests = []models.HostRequest{
	{
		ID:          "1",
		UserID:      "2",
		UserName:    "Jamie & Sam",
		UserAvatar:  "https://images.unsplash.com/photo-1494790108377-be9c29b29330?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		EventID:     "1",
		EventTitle:  "Summer Night Soiree",
		RequestDate: "2025-05-18",
		Status:      models.RequestPending,
	},
	{
		ID:          "2",
		UserID:      "3",
		UserName:    "Taylor Smith",
		UserAvatar:  "https://images.unsplash.com/photo-1570295999919-56ceb5ecca61?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		EventID:     "3",
		EventTitle:  "Beach Sunset Social",
		RequestDate: "2025-05-20",
		Status:      models.RequestApproved,
	},
}
