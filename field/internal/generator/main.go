package main

import (
	"fmt"
	"math/big"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
	"github.com/consensys/go-ecfield/field/chain"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-ecfield")

	primes := make([]*primeConfig, len(primeFields))
	for i, spec := range primeFields {
		cfg, err := spec.config()
		assertNoError(err, "for field \"%s\"", spec.Name)
		primes[i] = cfg
	}

	binaries := make([]*binaryConfig, len(binaryFields))
	for i, spec := range binaryFields {
		cfg, err := spec.config()
		assertNoError(err, "for field \"sect%d\"", spec.Degree)
		binaries[i] = cfg
	}

	assertNoError(bgen.Generate(struct{ Fields []*primeConfig }{primes}, "fp", "templates",
		bavard.Entry{
			File:      "../../fp/zz_fields.go",
			Templates: []string{"fp.fields.go.tmpl"},
		},
		bavard.Entry{
			File:      "../../fp/zz_fields_test.go",
			Templates: []string{"fp.fields.test.go.tmpl"},
		},
	), "for prime fields")

	assertNoError(bgen.Generate(struct{ Fields []*binaryConfig }{binaries}, "gf2m", "templates",
		bavard.Entry{
			File:      "../../gf2m/zz_fields.go",
			Templates: []string{"gf2m.fields.go.tmpl"},
		},
		bavard.Entry{
			File:      "../../gf2m/zz_fields_test.go",
			Templates: []string{"gf2m.fields.test.go.tmpl"},
		},
	), "for binary fields")
	// run gofmt on whole directory
	runCmd("gofmt", "-w", "../../../")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

// Reduction forms of prime moduli.
const (
	pseudoMersenne = iota
	solinas
	mersenne
)

type term struct {
	Offset int
	Sign   int
}

type primeSpecs struct {
	Type string
	Name string
	// Bit length of the modulus
	Bits uint
	Form int
	// For pseudo-Mersenne moduli, p = 2^Bits - Delta.
	Delta uint64
	// For Solinas moduli, 2^(32n) - p = Σ Sign * 2^(32*Offset).
	Terms []term
	// Human readable form of the modulus
	Description string
	Aliases     []string
	// Hand-tuned repunit chain for inversion, covering every run of ones in
	// p-2.  When nil, the chain is derived from the longest run.
	Chain chain.Chain
}

type primeConfig struct {
	primeSpecs
	Modulus   string
	Reduction string
	Inversion string
	AliasList string
}

var primeFields = []primeSpecs{
	{Type: "SecP160R1", Name: "secp160r1", Bits: 160, Form: pseudoMersenne, Description: "2^160 - 2^31 - 1", Delta: 1<<31 + 1, Chain: chain.Chain{1, 2, 4, 8, 16, 24, 28, 29, 56, 112, 128}},
	{Type: "SecP160R2", Name: "secp160r2", Bits: 160, Form: pseudoMersenne, Description: "2^160 - 2^32 - 21389", Delta: 1<<32 + 21389, Aliases: []string{"secp160k1"}, Chain: chain.Chain{1, 2, 3, 6, 12, 14, 17, 31, 62, 124, 127}},
	{Type: "SecP192K1", Name: "secp192k1", Bits: 192, Form: pseudoMersenne, Description: "2^192 - 2^32 - 4553", Delta: 1<<32 + 4553, Chain: chain.Chain{1, 2, 3, 6, 8, 16, 19, 35, 70, 140, 159}},
	{Type: "SecP192R1", Name: "secp192r1", Bits: 192, Form: solinas, Description: "2^192 - 2^64 - 1", Terms: []term{{2, 1}, {0, 1}}, Aliases: []string{"p192", "prime192v1"}, Chain: chain.Chain{1, 2, 4, 5, 10, 20, 40, 60, 62, 122, 127}},
	{Type: "SecP224K1", Name: "secp224k1", Bits: 224, Form: pseudoMersenne, Description: "2^224 - 2^32 - 6803", Delta: 1<<32 + 6803, Chain: chain.Chain{1, 2, 4, 8, 16, 18, 19, 38, 76, 152, 190, 191}},
	{Type: "SecP224R1", Name: "secp224r1", Bits: 224, Form: solinas, Description: "2^224 - 2^96 + 1", Terms: []term{{3, 1}, {0, -1}}, Aliases: []string{"p224"}, Chain: chain.Chain{1, 2, 4, 6, 12, 24, 48, 96, 120, 126, 127}},
	{Type: "SecP256K1", Name: "secp256k1", Bits: 256, Form: pseudoMersenne, Description: "2^256 - 2^32 - 977", Delta: 1<<32 + 977, Chain: chain.Chain{1, 2, 4, 8, 16, 20, 22, 44, 45, 89, 178, 223}},
	{Type: "SecP256R1", Name: "secp256r1", Bits: 256, Form: solinas, Description: "2^256 - 2^224 + 2^192 + 2^96 - 1", Terms: []term{{7, 1}, {6, -1}, {3, -1}, {0, 1}}, Aliases: []string{"p256", "prime256v1"}, Chain: chain.Chain{1, 2, 4, 8, 10, 20, 30, 32, 64, 94}},
	{Type: "SecP384R1", Name: "secp384r1", Bits: 384, Form: solinas, Description: "2^384 - 2^128 - 2^96 + 2^32 - 1", Terms: []term{{4, 1}, {3, 1}, {1, -1}, {0, 1}}, Aliases: []string{"p384"}, Chain: chain.Chain{1, 2, 4, 5, 10, 15, 30, 32, 60, 120, 240, 255}},
	{Type: "SecP521R1", Name: "secp521r1", Bits: 521, Form: mersenne, Description: "2^521 - 1", Aliases: []string{"p521"}},
	{Type: "SM2P256V1", Name: "sm2p256v1", Bits: 256, Form: solinas, Description: "2^256 - 2^224 - 2^96 + 2^64 - 1", Terms: []term{{7, 1}, {3, 1}, {2, -1}, {0, 1}}, Aliases: []string{"sm2"}, Chain: chain.Chain{1, 2, 4, 8, 10, 20, 30, 31, 62, 124, 128}},
	{Type: "Curve25519", Name: "curve25519", Bits: 255, Form: pseudoMersenne, Description: "2^255 - 19", Delta: 19, Aliases: []string{"ed25519", "x25519"}, Chain: chain.Chain{1, 2, 4, 8, 16, 32, 48, 50, 100, 200, 250}},
}

func (f primeSpecs) config() (*primeConfig, error) {
	var (
		n   = (f.Bits + 31) / 32
		r   = new(big.Int).Lsh(big.NewInt(1), 32*n)
		p   = new(big.Int)
		cfg = &primeConfig{primeSpecs: f, AliasList: aliasList(f.Aliases)}
	)

	switch f.Form {
	case pseudoMersenne:
		p.Lsh(big.NewInt(1), f.Bits)
		p.Sub(p, new(big.Int).SetUint64(f.Delta))
		// 2^(32n) mod p, which differs from delta when p does not fill its
		// top word.
		c := new(big.Int).Mod(r, p)
		if c.BitLen() > 64 {
			return nil, fmt.Errorf("reduction constant too large")
		}
		cfg.Reduction = fmt.Sprintf("pseudoMersenne(%#x)", c)
	case solinas:
		sum := new(big.Int)
		terms := make([]string, len(f.Terms))
		for i, t := range f.Terms {
			sum.Add(sum, new(big.Int).Lsh(big.NewInt(int64(t.Sign)), uint(32*t.Offset)))
			terms[i] = fmt.Sprintf("Term{%d, %d}", t.Offset, t.Sign)
		}
		p.Sub(r, sum)
		cfg.Reduction = fmt.Sprintf("solinas(%s)", strings.Join(terms, ", "))
	case mersenne:
		p.Lsh(big.NewInt(1), f.Bits)
		p.Sub(p, big.NewInt(1))
		cfg.Reduction = "mersenne521()"
	}

	if uint(p.BitLen()) != f.Bits || !p.ProbablyPrime(32) {
		return nil, fmt.Errorf("modulus is not a %d-bit prime", f.Bits)
	}

	cfg.Modulus = p.Text(16)
	cfg.Inversion = "nil"

	if f.Chain != nil {
		if err := f.Chain.Validate(); err != nil {
			return nil, err
		} else if extended := f.Chain.Extend(runLengths(new(big.Int).Sub(p, big.NewInt(2)))...); len(extended) != len(f.Chain) {
			return nil, fmt.Errorf("inversion chain misses runs %v", extended[len(f.Chain):])
		}

		cfg.Inversion = fmt.Sprintf("chain.Chain{%s}", chainList(f.Chain))
	}

	return cfg, nil
}

type binarySpecs struct {
	Degree  uint
	Ks      []uint
	Chain   chain.Chain
	Aliases []string
}

type binaryConfig struct {
	binarySpecs
	Words       uint
	ChainList   string
	KList       string
	Description string
	AliasList   string
}

var binaryFields = []binarySpecs{
	{113, []uint{9}, chain.Chain{1, 2, 3, 6, 7, 14, 28, 56, 112}, []string{"sect113r1", "sect113r2"}},
	{131, []uint{8, 3, 2}, chain.Chain{1, 2, 4, 8, 16, 32, 64, 65, 130}, []string{"sect131r1", "sect131r2"}},
	{163, []uint{7, 6, 3}, chain.Chain{1, 2, 4, 5, 10, 20, 40, 80, 81, 162}, []string{"sect163k1", "sect163r1", "sect163r2", "k163", "b163"}},
	{193, []uint{15}, chain.Chain{1, 2, 3, 6, 12, 24, 48, 96, 192}, []string{"sect193r1", "sect193r2"}},
	{233, []uint{74}, chain.Chain{1, 2, 3, 6, 7, 14, 28, 29, 58, 116, 232}, []string{"sect233k1", "sect233r1", "k233", "b233"}},
	{239, []uint{158}, chain.Chain{1, 2, 3, 6, 7, 14, 28, 29, 58, 59, 118, 119, 238}, []string{"sect239k1"}},
	{283, []uint{12, 7, 5}, chain.Chain{1, 2, 4, 8, 16, 17, 34, 35, 70, 140, 141, 282}, []string{"sect283k1", "sect283r1", "k283", "b283"}},
	{409, []uint{87}, chain.Chain{1, 2, 3, 6, 12, 24, 25, 50, 51, 102, 204, 408}, []string{"sect409k1", "sect409r1", "k409", "b409"}},
	{571, []uint{10, 5, 2}, chain.Chain{1, 2, 4, 8, 16, 17, 34, 35, 70, 71, 142, 284, 285, 570}, []string{"sect571k1", "sect571r1", "k571", "b571"}},
}

func (f binarySpecs) config() (*binaryConfig, error) {
	if err := f.Chain.Validate(); err != nil {
		return nil, err
	} else if f.Chain.Last() != f.Degree-1 {
		return nil, fmt.Errorf("inversion chain ends at %d", f.Chain.Last())
	}

	var (
		terms = []string{fmt.Sprintf("t^%d", f.Degree)}
		ks    = make([]string, len(f.Ks))
	)

	for i, k := range f.Ks {
		terms = append(terms, fmt.Sprintf("t^%d", k))
		ks[i] = fmt.Sprintf("%d", k)
	}

	return &binaryConfig{
		binarySpecs: f,
		Words:       (f.Degree + 63) / 64,
		Description: strings.Join(append(terms, "1"), " + "),
		ChainList:   chainList(f.Chain),
		KList:       strings.Join(ks, ", "),
		AliasList:   aliasList(f.Aliases),
	}, nil
}

// Lengths of the runs of ones in e.
func runLengths(e *big.Int) []uint {
	var (
		lengths []uint
		ones    uint
	)

	for i := e.BitLen() - 1; i >= -1; i-- {
		if i >= 0 && e.Bit(i) == 1 {
			ones++
		} else if ones != 0 {
			lengths = append(lengths, ones)
			ones = 0
		}
	}

	return lengths
}

func chainList(c chain.Chain) string {
	cs := make([]string, len(c))

	for i, l := range c {
		cs[i] = fmt.Sprintf("%d", l)
	}

	return strings.Join(cs, ", ")
}

func aliasList(aliases []string) string {
	var builder strings.Builder

	for _, a := range aliases {
		builder.WriteString(fmt.Sprintf(", \"%s\"", a))
	}

	return builder.String()
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
