// Command raccsign is a small CLI harness around the racc/codec
// byte-level API: generate a key pair, sign a message, verify a
// signed-message envelope, or emit a NIST-style KAT response file for any
// named Raccoon parameter set.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"raccoon/internal/katvectors"
	"raccoon/racc/codec"
	"raccoon/racc/drbg"
	"raccoon/racc/params"
)

func main() {
	name := flag.String("param", "Raccoon-128-1", "named parameter set (see racc/params)")
	mode := flag.String("mode", "keygen", "keygen | sign | verify | genkat")
	msgPath := flag.String("msg", "", "message file path")
	pkPath := flag.String("pk", "pk.bin", "public key file path")
	skPath := flag.String("sk", "sk.bin", "signing key file path")
	smPath := flag.String("sm", "sm.bin", "signed-message envelope path")
	katNum := flag.Int("katnum", 100, "number of KAT vectors to emit (genkat mode)")
	flag.Parse()

	par, ok := params.ByName(*name)
	if !ok {
		log.Fatalf("unknown parameter set %q", *name)
	}

	crypto := drbg.SystemRNG{}
	mask := drbg.NewMaskRNG()

	switch *mode {
	case "keygen":
		pk, sk, err := codec.ByteKeygen(par, crypto, mask)
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*pkPath, pk, 0o644); err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*skPath, sk, 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s (%d bytes), %s (%d bytes)\n", *pkPath, len(pk), *skPath, len(sk))

	case "sign":
		if *msgPath == "" {
			log.Fatal("-msg required")
		}
		msg, err := os.ReadFile(*msgPath)
		if err != nil {
			log.Fatal(err)
		}
		sk, err := os.ReadFile(*skPath)
		if err != nil {
			log.Fatal(err)
		}
		sm, err := codec.ByteSign(msg, sk, par, crypto, mask)
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*smPath, sm, 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s (%d bytes)\n", *smPath, len(sm))

	case "verify":
		sm, err := os.ReadFile(*smPath)
		if err != nil {
			log.Fatal(err)
		}
		pk, err := os.ReadFile(*pkPath)
		if err != nil {
			log.Fatal(err)
		}
		ok, msg := codec.ByteOpen(sm, pk, par)
		if !ok {
			fmt.Println("INVALID")
			os.Exit(1)
		}
		fmt.Printf("VALID, message: %s\n", hex.EncodeToString(msg))

	case "genkat":
		genkat(par, *katNum)

	default:
		log.Fatalf("unknown -mode %q", *mode)
	}
}

// genkat reproduces test_genkat.py's nist_kat_rsp: a master KAT DRBG seeded
// from the fixed 48-byte entropy string 0x00..0x2F drives both the
// per-vector seed and the message, and each vector's keygen/sign runs
// under its own KAT DRBG reseeded from that per-vector seed, so the whole
// file is reproducible byte-for-byte from the parameter set alone.
func genkat(par params.ParamSet, katNum int) {
	entropy := make([]byte, 48)
	for i := range entropy {
		entropy[i] = byte(i)
	}
	master, err := drbg.NewKATDRBG(entropy)
	if err != nil {
		log.Fatal(err)
	}

	records := make([]katvectors.Record, 0, katNum)
	for count := 0; count < katNum; count++ {
		seed, err := master.RandomBytes(48)
		if err != nil {
			log.Fatal(err)
		}
		mlen := 33 * (count + 1)
		msg, err := master.RandomBytes(mlen)
		if err != nil {
			log.Fatal(err)
		}

		crypto, err := drbg.NewKATDRBG(seed)
		if err != nil {
			log.Fatal(err)
		}
		mask := drbg.NewMaskRNG()

		pk, sk, err := codec.ByteKeygen(par, crypto, mask)
		if err != nil {
			log.Fatal(err)
		}
		sm, err := codec.ByteSign(msg, sk, par, crypto, mask)
		if err != nil {
			log.Fatal(err)
		}
		if ok, opened := codec.ByteOpen(sm, pk, par); !ok || string(opened) != string(msg) {
			log.Fatalf("genkat: vector %d failed self-check", count)
		}

		records = append(records, katvectors.Record{
			Count: count,
			Seed:  seed,
			MLen:  mlen,
			Msg:   msg,
			PK:    pk,
			SK:    sk,
			SMLen: len(sm),
			SM:    sm,
		})
		fmt.Printf("%s: vector %d/%d\n", par.Name, count+1, katNum)
	}

	fn := fmt.Sprintf("PQCsignKAT_%d.rsp", par.SkSz)
	f, err := os.Create(fn)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := katvectors.WriteRSP(f, par.Name, records); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s (%d vectors)\n", fn, len(records))
}
