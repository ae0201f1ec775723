package catalog

// Default is the program used when none is named.
const Default = "oscillator"

func init() {
	inc := table()
	inc.On("0", Zero).Write(One).Right().Goto("0")
	register(Program{
		Name:    "increment",
		Summary: "Writes 1 on every blank cell while moving right",
		Initial: "0",
		Rules:   inc.MustBuild(),
		Description: `A single rule: in state **0** reading a blank, write **1** and move right.
Every cell it reaches is blank, so it never halts. After *n* steps positions
0 to n-1 hold 1 and the head rests on a blank at position n.`,
	})

	osc := table()
	osc.On("0", Zero).Write(One).Right().Goto("1")
	osc.On("1", Zero).Write(One).Left().Goto("0")
	register(Program{
		Name:    "oscillator",
		Summary: "Two states bouncing between positions 0 and 1",
		Initial: "0",
		Rules:   osc.MustBuild(),
		Description: `State **0** writes 1 and moves right into state **1**, which writes 1 and
moves back left. Back at position 0 it reads the 1 it wrote, and no rule
covers *(0, 1)*, so it halts after two steps.`,
	})

	bb2 := table()
	bb2.On("A", Zero).Write(One).Right().Goto("B")
	bb2.On("A", One).Write(One).Left().Goto("B")
	bb2.On("B", Zero).Write(One).Left().Goto("A")
	bb2.On("B", One).Write(One).Right().Goto("H")
	register(Program{
		Name:    "busy-beaver-2",
		Summary: "2-state busy beaver: 6 steps, four 1s",
		Initial: "A",
		Rules:   bb2.MustBuild(),
		Description: `The two-state, two-symbol busy beaver. Starting on a blank tape it applies
**6** transitions, leaves **4** ones on the tape and halts in state **H**,
which has no rules.`,
	})

	bb3 := table()
	bb3.On("A", Zero).Write(One).Right().Goto("B")
	bb3.On("A", One).Write(One).Right().Goto("H")
	bb3.On("B", Zero).Write(Zero).Right().Goto("C")
	bb3.On("B", One).Write(One).Right().Goto("B")
	bb3.On("C", Zero).Write(One).Left().Goto("C")
	bb3.On("C", One).Write(One).Left().Goto("A")
	register(Program{
		Name:    "busy-beaver-3",
		Summary: "3-state busy beaver: 14 steps, six 1s",
		Initial: "A",
		Rules:   bb3.MustBuild(),
		Description: `A three-state, two-symbol busy beaver champion for ones written. It applies
**14** transitions and leaves **6** ones before halting in state **H**.`,
	})
}
