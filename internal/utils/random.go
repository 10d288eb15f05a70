package utils

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/mozillazg/go-pinyin"
	"github.com/sysu-ecnc-dev/center-planner/internal/domain"
)

var cityPrefixes = []string{
	"长", "新", "安", "平", "东", "西", "南", "北", "宁", "江",
	"临", "清", "金", "云", "宝", "永", "兴", "广", "青", "白",
}
var citySuffixes = []string{
	"州", "阳", "城", "沙", "海", "原", "门", "山", "口", "川",
}

func GenerateRandomChineseCityName(rng *rand.Rand) string {
	return cityPrefixes[rng.Intn(len(cityPrefixes))] + citySuffixes[rng.Intn(len(citySuffixes))]
}

// GenerateCityCodeFromChineseName 取每个字的完整拼音拼接成城市代码，例如 长沙 -> changsha
func GenerateCityCodeFromChineseName(chineseName string) string {
	return strings.Join(pinyin.LazyConvert(chineseName, nil), "")
}

// GeneratorOptions 描述随机实例的规模
type GeneratorOptions struct {
	Cities        int                    `validate:"min=1"`
	Locations     int                    `validate:"min=1"`
	Size          float64                `validate:"gt=0"` // 坐标取值范围为 [0, Size] 内的整数
	MaxPopulation int                    `validate:"min=1"`
	MinSeparation float64                `validate:"gte=0"`
	Types         []*domain.FacilityType `validate:"required,min=1,dive"`
}

// GenerateRandomInstance 随机生成城市和候选位置，拼音相同的城市代码后加序号以保证代码不重复
func GenerateRandomInstance(rng *rand.Rand, opts GeneratorOptions) (*domain.Instance, error) {
	if err := ValidateStruct(opts); err != nil {
		return nil, err
	}

	inst := &domain.Instance{
		Name:          fmt.Sprintf("随机实例-%d-%d", opts.Cities, opts.Locations),
		Cities:        make([]*domain.City, 0, opts.Cities),
		Facilities:    make([]*domain.Facility, 0, opts.Locations),
		Types:         opts.Types,
		MinSeparation: opts.MinSeparation,
	}

	size := int(math.Floor(opts.Size))
	codes := make(map[string]int)
	for i := 0; i < opts.Cities; i++ {
		name := GenerateRandomChineseCityName(rng)
		code := GenerateCityCodeFromChineseName(name)
		// 拼音相同的城市在代码后面加上序号
		n := codes[code]
		codes[code]++
		if n > 0 {
			code = fmt.Sprintf("%s%d", code, n+1)
		}

		inst.Cities = append(inst.Cities, &domain.City{
			ID:         i + 1,
			Name:       name,
			Code:       code,
			X:          float64(rng.Intn(size + 1)),
			Y:          float64(rng.Intn(size + 1)),
			Population: float64(rng.Intn(opts.MaxPopulation) + 1),
		})
	}

	for i := 0; i < opts.Locations; i++ {
		inst.Facilities = append(inst.Facilities, &domain.Facility{
			ID:   i + 1,
			Name: fmt.Sprintf("候选位置%d", i+1),
			X:    float64(rng.Intn(size + 1)),
			Y:    float64(rng.Intn(size + 1)),
		})
	}

	return inst, nil
}
