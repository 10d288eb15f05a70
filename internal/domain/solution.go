package domain

type FacilityRef struct {
	Facility int     `json:"facility"`
	Name     string  `json:"name,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Type     int     `json:"type"`
}

type Assignment struct {
	City      int          `json:"city"`
	Name      string       `json:"name,omitempty"`
	X         float64      `json:"x"`
	Y         float64      `json:"y"`
	Primary   *FacilityRef `json:"primary"`   // 为空表示没有主中心
	Secondary *FacilityRef `json:"secondary"` // 为空表示没有副中心
}

type FacilitySummary struct {
	FacilityRef
	Cost      int     `json:"cost"`
	Load      float64 `json:"load"`
	Capacity  float64 `json:"capacity"`
	Primary   []int   `json:"primary"`
	Secondary []int   `json:"secondary"`
}

// Solution 是某一时刻实例的只读快照，创建之后不再修改
type Solution struct {
	instance *Instance
	cost     int
}

func NewSolution(inst *Instance) *Solution {
	snapshot := inst.Clone()
	return &Solution{
		instance: snapshot,
		cost:     snapshot.TotalCost(),
	}
}

func (s *Solution) Cost() int {
	return s.cost
}

// Instance 返回快照的深拷贝，调用方可以随意修改
func (s *Solution) Instance() *Instance {
	return s.instance.Clone()
}

func (s *Solution) Missing() int {
	return s.instance.Missing()
}

func (s *Solution) Complete() bool {
	return s.instance.Missing() == 0
}

func facilityRef(f *Facility) *FacilityRef {
	if f == nil {
		return nil
	}
	ref := &FacilityRef{Facility: f.ID, Name: f.Name, X: f.X, Y: f.Y}
	if f.Type != nil {
		ref.Type = f.Type.ID
	}
	return ref
}

func (s *Solution) Assignments() []Assignment {
	out := make([]Assignment, 0, len(s.instance.Cities))
	for _, c := range s.instance.Cities {
		out = append(out, Assignment{
			City:      c.ID,
			Name:      c.Name,
			X:         c.X,
			Y:         c.Y,
			Primary:   facilityRef(c.Primary),
			Secondary: facilityRef(c.Secondary),
		})
	}
	return out
}

func (s *Solution) Facilities() []FacilitySummary {
	var out []FacilitySummary
	for _, f := range s.instance.ActiveFacilities() {
		summary := FacilitySummary{
			FacilityRef: *facilityRef(f),
			Cost:        f.Cost(),
			Load:        f.Load(),
			Primary:     []int{},
			Secondary:   []int{},
		}
		if f.Type != nil {
			summary.Capacity = f.Type.Capacity
		}
		for _, c := range f.PrimaryCities {
			summary.Primary = append(summary.Primary, c.ID)
		}
		for _, c := range f.SecondaryCities {
			summary.Secondary = append(summary.Secondary, c.ID)
		}
		out = append(out, summary)
	}
	return out
}
