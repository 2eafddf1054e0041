package calc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"src.graphcalc.dev/pkg/config"
	"src.graphcalc.dev/pkg/fn"
	"src.graphcalc.dev/pkg/history"
	"src.graphcalc.dev/pkg/plot"
	"src.graphcalc.dev/pkg/store"
	. "src.graphcalc.dev/pkg/store/storedefs"
)

const menu = `
graphing calculator
1. Plot Linear Function (y = mx + c)
2. Plot Quadratic Function (y = ax^2 + bx + c)
3. Plot Exponential Function (y = A*e^(Bx))
4. View Function History
5. Load Saved Functions
6. Clear History
7. Set Plot Range
8. Reset Plot Range
0. Exit
Enter your choice: `

const (
	msgInvalidInput  = "Invalid input! Please enter a number."
	msgInvalidChoice = "Invalid choice! Please try again."
	msgCannotWrite   = "Error: Could not open file for writing."
)

type session struct {
	in    *bufio.Reader
	out   io.Writer
	pause bool

	cfg     *config.Config
	plotter *plot.Plotter
	store   Store
	history history.History

	// Set by "Set Plot Range"; when nil, windows come from cfg.
	override *plot.Window
	// First error writing to out.
	outErr error
}

// Runs the menu loop until the user exits or the input ends.
func (s *session) run() error {
	s.print("Welcome\n")
	for {
		if s.outErr != nil {
			return s.outErr
		}
		s.print(menu)
		line, err := s.readLine()
		if err != nil {
			return s.endOfInput(err)
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			s.print(msgInvalidInput + "\n")
			continue
		}
		if choice == 0 {
			s.print("Thank you!\n")
			return s.outErr
		}
		if err := s.do(choice); err != nil {
			return s.endOfInput(err)
		}
		if s.pause {
			s.print("\nPress Enter to continue...")
			if _, err := s.readLine(); err != nil {
				return s.endOfInput(err)
			}
		}
	}
}

func (s *session) do(choice int) error {
	switch choice {
	case 1:
		return s.plotLinear()
	case 2:
		return s.plotQuadratic()
	case 3:
		return s.plotExponential()
	case 4:
		return s.history.Show(s.out)
	case 5:
		return store.ShowRecords(s.out, s.store)
	case 6:
		s.history.Clear()
		s.print("History cleared successfully.\n")
	case 7:
		return s.setRange()
	case 8:
		s.override = nil
		s.print("Plot range reset.\n")
	default:
		s.print(msgInvalidChoice + "\n")
	}
	return nil
}

// Ends the session on io.EOF, which is not an error.
func (s *session) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		logger.Println("end of input")
		s.print("\n")
		return s.outErr
	}
	return err
}

func (s *session) plotLinear() error {
	s.print("\n--- Linear Function: y = mx + c ---\n")
	m, err := s.readNumber("Enter slope (m): ")
	if err != nil {
		return err
	}
	c, err := s.readNumber("Enter y-intercept (c): ")
	if err != nil {
		return err
	}
	return s.plotAndOffer(fn.NewLinear(m, c))
}

func (s *session) plotQuadratic() error {
	s.print("\n--- Quadratic Function: y = ax^2 + bx + c ---\n")
	var abc [3]float64
	for i, name := range [...]string{"a", "b", "c"} {
		v, err := s.readNumber("Enter coefficient " + name + ": ")
		if err != nil {
			return err
		}
		abc[i] = v
	}
	return s.plotAndOffer(fn.NewQuadratic(abc[0], abc[1], abc[2]))
}

func (s *session) plotExponential() error {
	s.print("\n--- Exponential Function: y = A*e^(Bx) ---\n")
	a, err := s.readNumber("Enter coefficient (A): ")
	if err != nil {
		return err
	}
	b, err := s.readNumber("Enter exponent coefficient (B): ")
	if err != nil {
		return err
	}
	return s.plotAndOffer(fn.NewExponential(a, b))
}

// Adds f to the history, plots it and asks whether to save it. A function
// that cannot be plotted is still kept in the history.
func (s *session) plotAndOffer(f fn.Function) error {
	s.history.Add(f)
	if err := s.plotter.SetRange(s.window(f)); err != nil {
		logger.Printf("plotting %s: %v", f, err)
		s.print("Cannot plot " + f.Expr() + ": " + err.Error() + "\n")
		return nil
	}
	if err := s.plotter.Plot(s.out, f); err != nil {
		return err
	}

	s.print("Save this function? (y/n): ")
	answer, err := s.readLine()
	if err != nil {
		return err
	}
	if strings.HasPrefix(answer, "y") || strings.HasPrefix(answer, "Y") {
		s.save(f)
	}
	return nil
}

// Returns the window to plot f in.
func (s *session) window(f fn.Function) plot.Window {
	if s.override != nil {
		return *s.override
	}
	w := s.cfg.Window(f.Type())
	if lin, ok := f.(fn.Linear); ok {
		// Widen to keep the intercept in view.
		_, c := lin.Params()
		if r := 2 * math.Abs(c); r > math.Max(math.Abs(w.YMin), math.Abs(w.YMax)) {
			w.YMin, w.YMax = -r, r
		}
	}
	return w
}

// Saves f to the store and its sample table to the data file. Failures are
// reported and the session continues.
func (s *session) save(f fn.Function) {
	if err := s.store.AddRecord(RecordOf(f)); err != nil {
		logger.Printf("saving %s to %s: %v", f, s.store.Name(), err)
		s.print(msgCannotWrite + "\n")
	} else {
		s.print("Function saved to " + s.store.Name() + "\n")
	}

	w := s.plotter.Window()
	path := s.cfg.Files.Data
	if err := store.WriteSampleTable(path, f, w.XMin, w.XMax, s.cfg.Samples); err != nil {
		logger.Printf("writing samples of %s to %s: %v", f, path, err)
		s.print(msgCannotWrite + "\n")
	} else {
		s.print("Graph data saved to " + path + "\n")
	}
}

func (s *session) setRange() error {
	s.print("\n--- Set Plot Range ---\n")
	var bounds [4]float64
	for i, name := range [...]string{"x-min", "x-max", "y-min", "y-max"} {
		v, err := s.readNumber("Enter " + name + ": ")
		if err != nil {
			return err
		}
		bounds[i] = v
	}
	w := plot.Window{XMin: bounds[0], XMax: bounds[1], YMin: bounds[2], YMax: bounds[3]}
	if err := w.Validate(); err != nil {
		s.print("Invalid plot range: " + err.Error() + "\n")
		return nil
	}
	s.override = &w
	s.print(fmt.Sprintf("Plot range set to X[%g to %g], Y[%g to %g]\n",
		w.XMin, w.XMax, w.YMin, w.YMax))
	return nil
}

// Prompts until a finite number is entered.
func (s *session) readNumber(prompt string) (float64, error) {
	for {
		s.print(prompt)
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v, nil
		}
		s.print(msgInvalidInput + "\n")
	}
}

// Returns the next line of input with surrounding spaces removed. A last line
// without a newline is still returned; io.EOF is returned after that.
func (s *session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimSpace(line), err
}

// Writes text to out, keeping the first error for run to return.
func (s *session) print(text string) {
	if _, err := io.WriteString(s.out, text); err != nil && s.outErr == nil {
		s.outErr = err
	}
}
