package template_test

import (
	"fmt"

	"github.com/cwbudde/algo-snr/dsp/template"
)

func ExampleBoxcar() {
	tpl, _ := template.Boxcar(4)
	fmt.Println(tpl)
	fmt.Println(tpl.Size(), tpl.RefBin(), tpl.Reference())
	// Output:
	// Template(size=4, kind=boxcar, w=4.000)
	// 4 0 start
}

func ExampleGaussian() {
	tpl, _ := template.Gaussian(5)
	fmt.Println(tpl.Size(), tpl.RefBin(), tpl.Reference())
	// Output: 17 8 peak
}

func ExampleTemplate_PreparedData() {
	tpl, _ := template.New([]float64{3, 4}, 0, "start", "custom", nil)
	prep, _ := tpl.PreparedData(4)
	fmt.Println(prep)
	// Output: [0.6 0 0 0.8]
}

func ExampleBoxcars() {
	bank, _ := template.Boxcars([]int{8, 2, 4})
	for i := 0; i < bank.Len(); i++ {
		fmt.Println(bank.At(i).Size())
	}
	// Output:
	// 2
	// 4
	// 8
}
