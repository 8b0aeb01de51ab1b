/*
Package chomsky transforms context-free grammars into Chomsky Normal Form.

A context-free grammar (CFG) is given as line-oriented production text:

    S -> AB | a
    A -> aA | ε
    B -> b

Clients call chomsky.Convert to receive an equivalent grammar in Chomsky
Normal Form (CNF), together with a snapshot of the grammar after each of the
five normalization stages:

    cnf, steps, err := chomsky.Convert(input)
    if err != nil { … }
    for _, step := range steps {
        fmt.Println(step.Label)
        fmt.Println(step.Grammar.Text())
    }
    fmt.Println(cnf.Text())

In a CNF grammar every production either rewrites a nonterminal to exactly
two nonterminals, or to exactly one terminal. The single allowed exception
is a production from the start symbol to the empty string, present if and
only if the original language contains the empty string.

The heavy lifting is done by the sub-packages: package cfg holds the symbol
and grammar model plus the production-text parser, package nf implements the
five-stage normalization pipeline, and package lang enumerates bounded word
samples of a grammar's language.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chomsky
