/*
Package featural is about translating featural phonological constraints into
segmental ones.

Description

Phonotactic grammars are usually written in terms of distinctive features.
A constraint like

   *[+voice,-son][-voice]

forbids a voiced obstruent followed by a voiceless segment. Learners and
evaluators working on strings of segments cannot use such a constraint
directly: every bracketed feature bundle has to be replaced by the natural
class it denotes, i.e., by the set of segments of the inventory which carry
all the feature values of the bundle. Given a feature table for an inventory
{b, d, p, t, …} the constraint above becomes

   *(b|d)(p|t)

which is an ordinary pattern over segments.

A bundle may be complemented by a leading caret:

   [^+voice]   ⇒   [^(b|d)]

The complement stays on the pattern; the natural class itself is always the
positive set of matching segments.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

Base package featural holds the types shared by all sub-packages: the
feature table, feature specifications and the error taxonomy.
The work is done in sub-packages:

   natclass     resolves a list of feature specifications to a natural class
   constraint   splits constraint strings at feature-bundle brackets
   translate    rewrites constraints, one at a time or in batches

Reading and writing the tab-delimited files of the command line tool is
done by package internal/tabfile, the tool itself lives in cmd/featural.

Feature Tables

A feature table maps every segment of an inventory to one value per
feature. Values are compared by plain string equality; by convention they
are single characters like '+', '-' or '0'. A row labelled "empty" may
appear in table files, denoting the absence of a segment. It is never part
of any natural class.

  table := featural.NewFeatureTable("voice", "cont")
  table.AddSegment("a", "+", "+")
  table.AddSegment("b", "+", "-")
  table.AddSegment("c", "-", "+")

The order in which segments are added is significant: natural classes list
their members in table order, so output is reproducible.

*/
package featural
