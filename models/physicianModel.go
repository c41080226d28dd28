package models

// Physician is a doctor patients can book with. The list is fixed at build time.
type Physician struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

var Physicians = []Physician{
	{Name: "John Green", Image: "/assets/images/dr-green.png"},
	{Name: "Leila Cameron", Image: "/assets/images/dr-cameron.png"},
	{Name: "David Livingston", Image: "/assets/images/dr-livingston.png"},
	{Name: "Evan Peter", Image: "/assets/images/dr-peter.png"},
	{Name: "Jane Powell", Image: "/assets/images/dr-powell.png"},
	{Name: "Alex Ramirez", Image: "/assets/images/dr-remirez.png"},
	{Name: "Jasmine Lee", Image: "/assets/images/dr-lee.png"},
	{Name: "Alyana Cruz", Image: "/assets/images/dr-cruz.png"},
	{Name: "Hardik Sharma", Image: "/assets/images/dr-sharma.png"},
}

// FindPhysician looks a physician up by name.
func FindPhysician(name string) (Physician, bool) {
	for _, p := range Physicians {
		if p.Name == name {
			return p, true
		}
	}
	return Physician{}, false
}

// PhysicianNames returns the names of all physicians, in list order.
func PhysicianNames() []string {
	names := make([]string, len(Physicians))
	for i, p := range Physicians {
		names[i] = p.Name
	}
	return names
}
