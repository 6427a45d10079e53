package blanket_test

import (
	"context"
	"fmt"

	"github.com/aretw0/blanket"
)

func ExampleAssembler_Build() {
	model, err := blanket.New().Build(context.Background(), blanket.DefaultCase())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	radii := model.Geometry.Radii()
	fmt.Printf("first wall at %.2f cm, outer boundary at %.2f cm\n", radii[0], radii[len(radii)-1])
	fmt.Println(len(model.Tallies), "tallies, first:", model.Tallies[0].Name)
	// Output:
	// first wall at 188.70 cm, outer boundary at 298.80 cm
	// 67 tallies, first: TBR channel
}
