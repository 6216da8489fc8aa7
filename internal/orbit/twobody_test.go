package orbit

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TwoBody", func() {
	var sys *TwoBody

	BeforeEach(func() {
		sys = NewTwoBody(GM)
	})

	Describe("Derive", func() {
		It("maps velocity into position derivative", func() {
			dot := sys.Derive(State{X: 0, Y: 1, U: -2, V: 3})
			Expect(dot.X).To(Equal(-2.0))
			Expect(dot.Y).To(Equal(3.0))
		})

		It("points the acceleration toward the origin", func() {
			dot := sys.Derive(State{X: 0, Y: 1})
			Expect(dot.U).To(BeNumerically("~", 0, 1e-12))
			Expect(dot.V).To(BeNumerically("~", -GM, 1e-12))

			dot = sys.Derive(State{X: 2, Y: 0})
			// |a| = GM/r^2 = GM/4 in -x
			Expect(dot.U).To(BeNumerically("~", -GM/4, 1e-12))
			Expect(dot.V).To(BeNumerically("~", 0, 1e-12))
		})

		It("produces non-finite components at zero radius", func() {
			dot := sys.Derive(State{})
			Expect(math.IsNaN(dot.U)).To(BeTrue())
			Expect(math.IsNaN(dot.V)).To(BeTrue())
			Expect(dot.IsValid()).To(BeFalse())
		})

		It("respects an alternate gravitational parameter", func() {
			weak := NewTwoBody(1.0)
			dot := weak.Derive(State{X: 0, Y: 1})
			Expect(dot.V).To(BeNumerically("~", -1.0, 1e-12))
		})
	})

	Describe("conserved quantities", func() {
		It("gives the circular orbit energy -GM/2", func() {
			s := Circular(sys.GM)
			Expect(sys.Energy(s)).To(BeNumerically("~", -sys.GM/2, 1e-9))
		})

		It("recovers the unit semi-major axis and unit period", func() {
			s := Circular(sys.GM)
			Expect(sys.SemiMajorAxis(s)).To(BeNumerically("~", 1.0, 1e-9))
			Expect(sys.Period(s)).To(BeNumerically("~", 1.0, 1e-9))
		})

		It("recovers the semi-major axis of an eccentric orbit", func() {
			s := Elliptical(sys.GM, 1.0, 0.6)
			Expect(sys.SemiMajorAxis(s)).To(BeNumerically("~", 1.0, 1e-9))
		})
	})
})

var _ = Describe("initial conditions", func() {
	It("builds the circular preset", func() {
		s := Circular(GM)
		Expect(s.X).To(Equal(0.0))
		Expect(s.Y).To(Equal(1.0))
		Expect(s.U).To(Equal(-math.Sqrt(GM)))
		Expect(s.V).To(Equal(0.0))
	})

	It("builds the elliptical preset at perihelion", func() {
		a, e := 1.0, 0.6
		s := Elliptical(GM, a, e)
		Expect(s.Y).To(BeNumerically("~", a*(1-e), 1e-12))
		Expect(s.U).To(BeNumerically("~", -math.Sqrt(GM/a*(1+e)/(1-e)), 1e-12))
	})

	It("matches the exact circular solution at t=0", func() {
		Expect(CircularSolution(GM, 0)).To(Equal(Circular(GM)))
	})

	It("closes the exact circular solution after one period", func() {
		s := CircularSolution(GM, 1)
		s0 := Circular(GM)
		Expect(s.Sub(s0).Radius()).To(BeNumerically("<", 1e-9))
	})
})
