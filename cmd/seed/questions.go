package main

import "interviewerbot/internal/model"

// seedQuestions is the initial question bank, organized by topic.
var seedQuestions = map[string][]model.BankQuestion{
	"Java": {
		{Question: "What is the difference between JDK, JRE, and JVM?", ExpectedAnswer: "JDK is for development, JRE for running, JVM executes bytecode.", Keywords: []string{"jdk", "jre", "jvm", "bytecode", "development"}},
		{Question: "Explain the concept of OOP in Java.", ExpectedAnswer: "OOP uses objects and classes, focusing on encapsulation, inheritance, polymorphism.", Keywords: []string{"oop", "objects", "classes", "encapsulation", "inheritance", "polymorphism"}},
		{Question: "A production list is throwing NullPointerException occasionally. How do you handle this efficiently?", ExpectedAnswer: "Check for nulls before access, use Optional, or basic if-checks.", Keywords: []string{"nullpointerexception", "optional", "null", "exception"}},
		{Question: "How would you design a thread-safe Singleton class?", ExpectedAnswer: "Use double-checked locking, static inner helper class, or Enum singleton.", Keywords: []string{"singleton", "thread-safe", "double-checked", "locking", "enum"}},
		{Question: "What happens if you try to modify a collection while iterating over it?", ExpectedAnswer: "It throws ConcurrentModificationException. Use Iterator.remove() or concurrent collections.", Keywords: []string{"concurrentmodificationexception", "iterator", "collection", "concurrent"}},
		{Question: "Explain the difference between HashMap and Hashtable.", ExpectedAnswer: "HashMap is non-synchronized and allows nulls; Hashtable is synchronized.", Keywords: []string{"hashmap", "hashtable", "synchronized", "nulls"}},
		{Question: "How would you handle a memory leak in a Java application?", ExpectedAnswer: "Use a profiler (like VisualVM) to analyze heap dump and find objects retaining memory.", Keywords: []string{"memory", "leak", "profiler", "visualvm", "heap", "dump"}},
		{Question: "Scenario: You need to read a 10GB file in Java with only 2GB RAM. How do you do it?", ExpectedAnswer: "Use Streams or memory-mapped files to read line-by-line instead of loading all at once.", Keywords: []string{"streams", "memory-mapped", "file", "line-by-line", "buffered"}},
		{Question: "What is the difference between an Interface and an Abstract Class?", ExpectedAnswer: "Interfaces define contracts (can implements multiple), Abstract classes define base behavior (single inheritance).", Keywords: []string{"interface", "abstract", "class", "inheritance", "contract"}},
		{Question: "Explain the String Pool and why Strings are immutable.", ExpectedAnswer: "Strings are cached in a pool to save memory. Immutability ensures security and thread-safety.", Keywords: []string{"string", "pool", "immutable", "cache", "thread-safety"}},
		{Question: "What is the 'final' keyword used for?", ExpectedAnswer: "It can make variables constant, methods un-overridable, and classes un-inheritable.", Keywords: []string{"final", "constant", "override", "inherit"}},
		{Question: "Difference between Checked and Unchecked exceptions?", ExpectedAnswer: "Checked are enforced at compile-time (IOException); Unchecked occur at runtime (NullPointerException).", Keywords: []string{"checked", "unchecked", "exception", "compile-time", "runtime"}},
		{Question: "Compare Synchronized block vs ReentrantLock.", ExpectedAnswer: "Synchronized is implicit/scoped; ReentrantLock offers more control like tryLock() and fairness policies.", Keywords: []string{"synchronized", "reentrantlock", "trylock", "fairness", "lock"}},
		{Question: "What is the 'volatile' keyword?", ExpectedAnswer: "It guarantees visibility of changes to variables across threads (happens-before relationship).", Keywords: []string{"volatile", "visibility", "threads", "happens-before"}},
		{Question: "How does Java Serialization work? What is serialVersionUID?", ExpectedAnswer: "Converts objects to byte streams. serialVersionUID ensures version compatibility during deserialization.", Keywords: []string{"serialization", "byte", "serialversionuid", "deserialization"}},
		{Question: "Explain Generics and Type Erasure.", ExpectedAnswer: "Generics provide type safety at compile time. Erasure removes type info at runtime for backward compatibility.", Keywords: []string{"generics", "type", "erasure", "compile-time", "backward"}},
		{Question: "How does the Garbage Collector know what to remove?", ExpectedAnswer: "It finds unreachable objects (no references) starting from GC Roots (stack, static vars).", Keywords: []string{"garbage", "collector", "gc", "roots", "unreachable", "references"}},
		{Question: "What are the differences between ArrayList and LinkedList?", ExpectedAnswer: "ArrayList uses dynamic arrays (fast access, slow modify); LinkedList uses nodes (slow access, fast modify).", Keywords: []string{"arraylist", "linkedlist", "dynamic", "array", "nodes"}},
		{Question: "Explain the Factory Design Pattern.", ExpectedAnswer: "A creational pattern that uses a factory method to create objects without specifying the exact class.", Keywords: []string{"factory", "pattern", "creational", "design"}},
		{Question: "What is the difference between map() and flatMap() in Streams?", ExpectedAnswer: "map() transforms elements 1-to-1; flatMap() flattens nested structures (1-to-Many).", Keywords: []string{"map", "flatmap", "streams", "transform", "flatten"}},
		{Question: "What is a Functional Interface?", ExpectedAnswer: "An interface with exactly one abstract method, compatible with Lambdas (e.g., Runnable, Callable).", Keywords: []string{"functional", "interface", "lambda", "runnable", "callable"}},
		{Question: "Explain the Reflection API.", ExpectedAnswer: "Allows inspecting and modifying runtime behavior of classes, methods, and fields dynamically.", Keywords: []string{"reflection", "api", "runtime", "dynamic", "inspect"}},
		{Question: "What is the difference between Comparable and Comparator?", ExpectedAnswer: "Comparable defines natural ordering (compareTo); Comparator defines custom external ordering (compare).", Keywords: []string{"comparable", "comparator", "ordering", "compareto"}},
		{Question: "Differentiate between Stack and Heap memory.", ExpectedAnswer: "Stack stores local variables/method calls (LIFO); Heap stores objects (global access).", Keywords: []string{"stack", "heap", "memory", "lifo", "local"}},
		{Question: "What is the try-with-resources statement?", ExpectedAnswer: "Automatically closes resources (like streams/connections) implementing AutoCloseable.", Keywords: []string{"try-with-resources", "autocloseable", "streams", "connections"}},
		{Question: "How do you prevent Deadlocks in Java?", ExpectedAnswer: "Avoid nested locks, use lock ordering, or use tryLock with timeouts.", Keywords: []string{"deadlock", "lock", "ordering", "timeout", "nested"}},
	},
	"Python": {
		{Question: "What is the difference between a list and a tuple?", ExpectedAnswer: "Lists are mutable, tuples are immutable.", Keywords: []string{"list", "tuple", "mutable", "immutable"}},
		{Question: "Explain the use of decorators in Python.", ExpectedAnswer: "Decorators modify the behavior of a function or class using @symbol.", Keywords: []string{"decorator", "function", "class", "wrapper"}},
		{Question: "How is memory managed in Python?", ExpectedAnswer: "Python uses a private heap and automatic garbage collection with reference counting.", Keywords: []string{"memory", "heap", "garbage", "collection", "reference"}},
		{Question: "Scenario: Your Python script is running too slow processing data. How do you optimize it?", ExpectedAnswer: "Use profiling to find bottlenecks, vectorization with NumPy, or parallelism.", Keywords: []string{"optimize", "profiling", "numpy", "vectorization", "parallelism"}},
		{Question: "What is the difference between deep copy and shallow copy?", ExpectedAnswer: "Shallow copy copies references, deep copy creates new objects recursively.", Keywords: []string{"deep", "shallow", "copy", "reference", "recursive"}},
		{Question: "Explain generators vs lists. When would you use a generator?", ExpectedAnswer: "Generators yield items one by one (memory efficient), lists store everything (memory heavy).", Keywords: []string{"generator", "yield", "memory", "efficient", "list"}},
		{Question: "How do you handle dependency management in a large Python project?", ExpectedAnswer: "Use requirements.txt, virtual environments (venv), or Docker.", Keywords: []string{"dependency", "requirements", "venv", "virtual", "docker"}},
		{Question: "What is the Global Interpreter Lock (GIL)?", ExpectedAnswer: "A mutex that prevents multiple native threads from executing Python bytecodes at once.", Keywords: []string{"gil", "global", "interpreter", "lock", "mutex", "threads"}},
		{Question: "Explain the 'with' statement and Context Managers.", ExpectedAnswer: "Ensures resources (files, locks) are properly acquired and released (setup/teardown logic).", Keywords: []string{"with", "context", "manager", "resource", "teardown"}},
		{Question: "Difference between __init__ and __new__?", ExpectedAnswer: "__new__ creates the instance; __init__ initializes it. __new__ is used for immutable subclassing.", Keywords: []string{"init", "new", "instance", "initialize", "immutable"}},
		{Question: "What are Metaclasses in Python?", ExpectedAnswer: "Classes of classes. They define how classes themselves are created (e.g., Singleton implementation).", Keywords: []string{"metaclass", "class", "singleton", "type"}},
		{Question: "Compare List Comprehension vs Generator Expression.", ExpectedAnswer: "List comp creates a full list in memory; Generator expr returns an iterator (lazy evaluation).", Keywords: []string{"comprehension", "generator", "expression", "lazy", "iterator"}},
		{Question: "What is Monkey Patching?", ExpectedAnswer: "Dynamically modifying a class or module at runtime (often for testing/mocking).", Keywords: []string{"monkey", "patching", "runtime", "testing", "mocking"}},
		{Question: "Explain the difference between Multiprocessing and Threading.", ExpectedAnswer: "Threading is limited by GIL (good for I/O); Multiprocessing uses separate processes (good for CPU bound).", Keywords: []string{"multiprocessing", "threading", "gil", "io", "cpu"}},
		{Question: "Difference between 'is' and '=='?", ExpectedAnswer: "'is' checks identity (same memory address); '==' checks equality (same value).", Keywords: []string{"is", "equality", "identity", "memory", "address"}},
		{Question: "What happens with mutable default arguments in functions?", ExpectedAnswer: "They are created once at definition time, leading to shared state across calls (common bug).", Keywords: []string{"mutable", "default", "argument", "shared", "state"}},
		{Question: "Explain *args and **kwargs.", ExpectedAnswer: "*args passes variable positional arguments; **kwargs passes variable keyword arguments.", Keywords: []string{"args", "kwargs", "positional", "keyword", "arguments"}},
		{Question: "What is a Lambda function?", ExpectedAnswer: "A small anonymous function defined with the lambda keyword, usually for short operations.", Keywords: []string{"lambda", "anonymous", "function", "inline"}},
		{Question: "Explain the Iterator Protocol.", ExpectedAnswer: "An object must implement __iter__() returning self and __next__() returning values or StopIteration.", Keywords: []string{"iterator", "protocol", "iter", "next", "stopiteration"}},
		{Question: "What is Pickling?", ExpectedAnswer: "Serializing a Python object structure into a byte stream for storage or transmission.", Keywords: []string{"pickle", "serialize", "byte", "stream", "storage"}},
		{Question: "Explain LEGB scope rule.", ExpectedAnswer: "Local, Enclosing, Global, Built-in. The order in which Python looks up variable names.", Keywords: []string{"legb", "scope", "local", "global", "enclosing"}},
		{Question: "What are PyTest Fixtures?", ExpectedAnswer: "Functions that run before/after tests to set up state or data (dependency injection for tests).", Keywords: []string{"pytest", "fixture", "test", "setup", "injection"}},
		{Question: "Difference between asyncio and threading?", ExpectedAnswer: "Asyncio uses a single-threaded event loop (cooperative multitasking); Threading uses OS threads.", Keywords: []string{"asyncio", "threading", "event", "loop", "cooperative"}},
		{Question: "How does Python handle circular imports?", ExpectedAnswer: "It can fail or return partially initialized modules. Fix by moving imports inside functions or restructuring.", Keywords: []string{"circular", "import", "module", "restructure"}},
	},
	"JavaScript": {
		{Question: "What is the difference between var, let, and const?", ExpectedAnswer: "Var is function scoped, let/const are block scoped. Const cannot be reassigned.", Keywords: []string{"var", "let", "const", "scope", "block", "function"}},
		{Question: "Explain the event loop in JavaScript.", ExpectedAnswer: "It handles asynchronous callbacks by pushing them to the call stack when empty.", Keywords: []string{"event", "loop", "async", "callback", "stack"}},
		{Question: "Scenario: A user complains the UI freezes when clicking a button. What could be the cause?", ExpectedAnswer: "Heavy computation on the main thread blocking the Event Loop. Use Web Workers or async.", Keywords: []string{"freeze", "ui", "main", "thread", "event", "loop", "workers"}},
		{Question: "What are Promises and how are they different from Callbacks?", ExpectedAnswer: "Promises represent future values and avoid 'callback hell' by chaining .then().", Keywords: []string{"promise", "callback", "then", "async", "chain"}},
		{Question: "What is a closure? Give a practical use case.", ExpectedAnswer: "A function retaining access to its outer scope. Used for data privacy/currying.", Keywords: []string{"closure", "scope", "privacy", "currying", "function"}},
		{Question: "Explain 'this' keyword behavior in Arrow functions vs Normal functions.", ExpectedAnswer: "Arrow functions inherit 'this' from surrounding scope; normal functions define 'this' based on caller.", Keywords: []string{"this", "arrow", "function", "scope", "caller"}},
		{Question: "What is Hoisting?", ExpectedAnswer: "Variable and function declarations are moved to the top of their scope during compilation.", Keywords: []string{"hoisting", "declaration", "scope", "compilation"}},
		{Question: "Explain Prototypal Inheritance.", ExpectedAnswer: "Objects inherit properties directly from other objects (prototypes) via the prototype chain.", Keywords: []string{"prototype", "inheritance", "chain", "object"}},
		{Question: "Difference between '==' and '==='?", ExpectedAnswer: "'==' converts types (coercion) before comparing; '===' checks value and type (strict equality).", Keywords: []string{"equality", "coercion", "strict", "type"}},
		{Question: "What do bind, call, and apply do?", ExpectedAnswer: "They change the context of 'this'. Call/Apply invoke immediately; Bind returns a new function.", Keywords: []string{"bind", "call", "apply", "this", "context"}},
		{Question: "What is Destructuring Assignment?", ExpectedAnswer: "Unpacking values from arrays or properties from objects into distinct variables.", Keywords: []string{"destructuring", "array", "object", "unpack", "variable"}},
		{Question: "Explain the Spread (...) vs Rest operator.", ExpectedAnswer: "Spread expands iterables; Rest collects multiple elements into an array.", Keywords: []string{"spread", "rest", "operator", "iterable", "array"}},
		{Question: "What is Currying?", ExpectedAnswer: "Transforming a function with multiple arguments into a sequence of functions taking one argument.", Keywords: []string{"currying", "function", "argument", "sequence"}},
		{Question: "Explain Higher Order Functions.", ExpectedAnswer: "Functions that take other functions as args or return them (e.g., map, filter, reduce).", Keywords: []string{"higher", "order", "function", "map", "filter", "reduce"}},
		{Question: "Difference between CommonJS and ES6 Modules?", ExpectedAnswer: "CommonJS uses require/module.exports (dynamic); ES6 uses import/export (static/analyzable).", Keywords: []string{"commonjs", "es6", "module", "require", "import", "export"}},
		{Question: "What is Event Bubbling vs Capturing?", ExpectedAnswer: "Bubbling propagates events up the DOM; Capturing propagates down. Controlled via addEventListener options.", Keywords: []string{"bubbling", "capturing", "event", "dom", "propagate"}},
		{Question: "Difference between LocalStorage, SessionStorage, and Cookies?", ExpectedAnswer: "Local stays until deleted; Session clears on tab close; Cookies are sent with HTTP requests.", Keywords: []string{"localstorage", "sessionstorage", "cookies", "storage"}},
		{Question: "Why use async/await over Promises?", ExpectedAnswer: "Syntactic sugar that makes asynchronous code look synchronous and easier to read/debug.", Keywords: []string{"async", "await", "promise", "syntactic", "sugar"}},
		{Question: "What is Memoization?", ExpectedAnswer: "Caching results of expensive function calls based on arguments to speed up future calls.", Keywords: []string{"memoization", "cache", "function", "performance"}},
		{Question: "What is a Generator Function?", ExpectedAnswer: "A function that can pause execution (yield) and resume later. Returns an iterator.", Keywords: []string{"generator", "yield", "iterator", "pause", "resume"}},
		{Question: "Explain Event Delegation.", ExpectedAnswer: "Attaching a single listener to a parent element to manage events for all descendants.", Keywords: []string{"event", "delegation", "listener", "parent", "descendant"}},
		{Question: "What is 'Strict Mode'?", ExpectedAnswer: "Enforces stricter parsing/error handling (e.g., prevents accidental globals) using 'use strict'.", Keywords: []string{"strict", "mode", "parsing", "error", "global"}},
		{Question: "What are Typed Arrays in JS?", ExpectedAnswer: "Array-like buffers (Int8Array, Float32Array) for handling raw binary data efficiently.", Keywords: []string{"typed", "array", "buffer", "binary", "int8array"}},
	},
	"React": {
		{Question: "What are React Hooks?", ExpectedAnswer: "Functions that let you use state and lifecycle features in functional components.", Keywords: []string{"hooks", "state", "lifecycle", "functional", "component"}},
		{Question: "Scenario: A component is re-rendering too often, causing lag. How do you fix it?", ExpectedAnswer: "Use React.memo, useMemo/useCallback to cache values/functions, or verify dependency arrays.", Keywords: []string{"rerender", "memo", "usememo", "usecallback", "performance"}},
		{Question: "Explain the difference between State and Props.", ExpectedAnswer: "State is internal/mutable; Props are external/read-only passed from parent.", Keywords: []string{"state", "props", "internal", "external", "mutable"}},
		{Question: "When would you use Redux or Context API over local state?", ExpectedAnswer: "When state needs to be accessed by many completely unrelated components (global state).", Keywords: []string{"redux", "context", "api", "global", "state"}},
		{Question: "What is the Virtual DOM and how does it improve performance?", ExpectedAnswer: "It's a lightweight copy of DOM. React calculates diffs (reconciliation) and updates only changed nodes.", Keywords: []string{"virtual", "dom", "diff", "reconciliation", "performance"}},
		{Question: "Scenario: You need to optimize the initial load time of a large React app.", ExpectedAnswer: "Use Code Splitting (React.lazy/Suspense), minimize bundle size, and optimize assets.", Keywords: []string{"code", "splitting", "lazy", "suspense", "bundle", "optimize"}},
		{Question: "What is the useEffect Hook used for?", ExpectedAnswer: "Handling side effects (fetching data, subscriptions) in functional components.", Keywords: []string{"useeffect", "side", "effect", "fetch", "subscription"}},
		{Question: "Dependency Array pitfalls in useEffect?", ExpectedAnswer: "Omitting dependencies causes stale closures; including objects/arrays without memoization causes loops.", Keywords: []string{"dependency", "array", "stale", "closure", "memoization"}},
		{Question: "Difference between useRef and useState?", ExpectedAnswer: "useRef values persist without triggering re-renders; useState triggers re-render on update.", Keywords: []string{"useref", "usestate", "rerender", "persist"}},
		{Question: "What are Higher Order Components (HOC)?", ExpectedAnswer: "Functions that take a component and return a new enhanced component.", Keywords: []string{"hoc", "higher", "order", "component", "enhance"}},
		{Question: "Explain the Render Props pattern.", ExpectedAnswer: "Sharing code between components using a prop whose value is a function.", Keywords: []string{"render", "props", "pattern", "function", "share"}},
		{Question: "What are Error Boundaries?", ExpectedAnswer: "Components that catch JavaScript errors in their child component tree.", Keywords: []string{"error", "boundary", "catch", "child", "tree"}},
		{Question: "What are React Portals?", ExpectedAnswer: "Way to render children into a DOM node properly outside the parent hierarchy (e.g., Modals).", Keywords: []string{"portal", "render", "dom", "modal", "hierarchy"}},
		{Question: "Compare SSR (Server Side Rendering) vs CSR.", ExpectedAnswer: "SSR sends fully rendered HTML (better SEO/initial load); CSR renders in browser (interactive faster).", Keywords: []string{"ssr", "csr", "server", "client", "rendering", "seo"}},
		{Question: "controlled vs uncontrolled components?", ExpectedAnswer: "Controlled gets value from state; Uncontrolled gets value from Ref (DOM source of truth).", Keywords: []string{"controlled", "uncontrolled", "state", "ref", "dom"}},
		{Question: "What is Prop Drilling and how to avoid it?", ExpectedAnswer: "Passing data through many layers. Avoid via Context API, Redux, or Composition.", Keywords: []string{"prop", "drilling", "context", "redux", "composition"}},
		{Question: "What are Custom Hooks?", ExpectedAnswer: "User-defined hooks to extract reusable logic involving other hooks (e.g., useFetch).", Keywords: []string{"custom", "hook", "reusable", "logic", "usefetch"}},
		{Question: "Why are 'keys' important in lists?", ExpectedAnswer: "They help React identify which items changed, added, or removed. Using index is bad if order changes.", Keywords: []string{"key", "list", "identify", "change", "index"}},
		{Question: "What is React Fiber?", ExpectedAnswer: "The reimplemented reconciliation engine allowing incremental rendering and prioritization.", Keywords: []string{"fiber", "reconciliation", "incremental", "rendering", "priority"}},
		{Question: "Explain React.StrictMode.", ExpectedAnswer: "A tool/wrapper that activates checks/warnings (like double rendering) in development mode.", Keywords: []string{"strictmode", "checks", "warnings", "development"}},
		{Question: "Difference between CSS-in-JS and CSS Modules?", ExpectedAnswer: "CSS-in-JS (Styled Components) scopes styles dynamically; Modules scope via unique class names at build time.", Keywords: []string{"css", "js", "modules", "styled", "components", "scope"}},
		{Question: "How do you handle forms in React?", ExpectedAnswer: "Using strict state control (onChange handlers) or libraries like Formik/React Hook Form.", Keywords: []string{"form", "onchange", "formik", "react", "hook"}},
	},
	"SQL": {
		{Question: "What is the difference between INNER JOIN and LEFT JOIN?", ExpectedAnswer: "Inner join returns matching rows; Left join returns all left rows + matches.", Keywords: []string{"inner", "join", "left", "matching", "rows"}},
		{Question: "Scenario: A query is running very slow on a large table. How do you optimize it?", ExpectedAnswer: "Add Indexes on filtered columns, avoid SELECT *, check execution plan.", Keywords: []string{"index", "optimize", "slow", "execution", "plan"}},
		{Question: "Explain ACID properties.", ExpectedAnswer: "Atomicity, Consistency, Isolation, Durability - ensuring reliable transactions.", Keywords: []string{"acid", "atomicity", "consistency", "isolation", "durability"}},
		{Question: "What is Normalization? Why might you purposefully DE-normalize?", ExpectedAnswer: "Normalization reduces redundancy. Denormalization improves read performance by reducing joins.", Keywords: []string{"normalization", "denormalization", "redundancy", "performance"}},
		{Question: "What is an Index? Are there downsides to having too many?", ExpectedAnswer: "Indexes speed up reads but slow down writes (INSERT/UPDATE) and consume storage.", Keywords: []string{"index", "read", "write", "storage", "performance"}},
		{Question: "Difference between WHERE and HAVING clause?", ExpectedAnswer: "WHERE filters rows before grouping; HAVING filters groups after aggregation.", Keywords: []string{"where", "having", "filter", "group", "aggregation"}},
		{Question: "Explain Primary Key vs Foreign Key.", ExpectedAnswer: "Primary uniquely identifies a row; Foreign links to a Primary Key in another table (enforces integrity).", Keywords: []string{"primary", "key", "foreign", "integrity", "unique"}},
		{Question: "Stored Procedures vs Functions in SQL?", ExpectedAnswer: "Procs can perform actions/transactions; Functions must return a value and cannot change DB state.", Keywords: []string{"stored", "procedure", "function", "transaction", "return"}},
		{Question: "What is a Database Trigger?", ExpectedAnswer: "Code that automatically runs in response to specific events (INSERT, UPDATE) on a table.", Keywords: []string{"trigger", "event", "insert", "update", "automatic"}},
		{Question: "Difference between View and Materialized View?", ExpectedAnswer: "View is a virtual query (runs every time); Materialized stores the result physically (needs refreshing).", Keywords: []string{"view", "materialized", "virtual", "physical", "refresh"}},
		{Question: "Explain UNION vs UNION ALL.", ExpectedAnswer: "UNION removes duplicates; UNION ALL keeps duplicates (faster).", Keywords: []string{"union", "all", "duplicate", "faster"}},
		{Question: "Clustered vs Non-Clustered Index?", ExpectedAnswer: "Clustered stores data physically in order (only 1 per table); Non-Clustered is a separate pointer list.", Keywords: []string{"clustered", "non-clustered", "index", "physical", "pointer"}},
		{Question: "What are Transaction Isolation Levels?", ExpectedAnswer: "Read Uncommitted, Read Committed, Repeatable Read, Serializable (trade-off between consistency and concurrency).", Keywords: []string{"isolation", "level", "read", "committed", "serializable"}},
		{Question: "What is a Self Join?", ExpectedAnswer: "Joining a table with itself, useful for hierarchical data (e.g., Employee Manager relationship).", Keywords: []string{"self", "join", "hierarchical", "employee", "manager"}},
		{Question: "Explain Window Functions like RANK() or ROW_NUMBER().", ExpectedAnswer: "Perform calculations across a set of table rows related to the current row without grouping.", Keywords: []string{"window", "function", "rank", "row_number", "partition"}},
		{Question: "What is a CTE (Common Table Expression)?", ExpectedAnswer: "A temporary result set named in a WITH clause, improving readability over subqueries.", Keywords: []string{"cte", "common", "table", "expression", "with"}},
		{Question: "How to prevent SQL Injection?", ExpectedAnswer: "Use Parameterized Queries (Prepared Statements) or ORMs; never concatenate user input.", Keywords: []string{"sql", "injection", "parameterized", "prepared", "statement"}},
		{Question: "Sharding vs Partitioning?", ExpectedAnswer: "sharding distributes data across multiple servers; Partitioning splits a table within a single database.", Keywords: []string{"sharding", "partitioning", "distribute", "server", "split"}},
		{Question: "NoSQL vs SQL trade-offs?", ExpectedAnswer: "SQL = Structured, ACID, Scaling Up. NoSQL = Flexible schema, BASE, Scaling Out.", Keywords: []string{"nosql", "sql", "acid", "base", "schema", "scaling"}},
		{Question: "What is the N+1 problem?", ExpectedAnswer: "Fetching parent then fetching children individually (N queries) instead of 1 join query.", Keywords: []string{"n+1", "problem", "query", "join", "fetch"}},
		{Question: "DELETE vs TRUNCATE vs DROP?", ExpectedAnswer: "DELETE removes rows (loggable); TRUNCATE resets table (fast); DROP deletes table structure.", Keywords: []string{"delete", "truncate", "drop", "rows", "table"}},
		{Question: "Difference between COALESCE and ISNULL?", ExpectedAnswer: "COALESCE returns first non-null argument (standard SQL); ISNULL is engine specific (often 2 args).", Keywords: []string{"coalesce", "isnull", "null", "argument"}},
		{Question: "When might a Subquery be faster than a Join?", ExpectedAnswer: "Sometimes, when the subquery can filter massive data early (though optimizers often treat them similarly).", Keywords: []string{"subquery", "join", "filter", "optimizer", "performance"}},
	},
	"Machine_Learning": {
		{Question: "What is the difference between Supervised and Unsupervised learning?", ExpectedAnswer: "Supervised uses labeled data; Unsupervised uses unlabeled data to find patterns.", Keywords: []string{"supervised", "unsupervised", "labeled", "unlabeled", "pattern"}},
		{Question: "Scenario: Your model has high accuracy on training data but low on test data. What is happening?", ExpectedAnswer: "Overfitting. Fix by adding data, regularization, or simplifying the model.", Keywords: []string{"overfitting", "accuracy", "training", "test", "regularization"}},
		{Question: "Explain the Bias-Variance tradeoff.", ExpectedAnswer: "Balancing error from erroneous assumptions (bias) vs sensitivity to noise (variance).", Keywords: []string{"bias", "variance", "tradeoff", "error", "noise"}},
		{Question: "How do you handle an imbalanced dataset (e.g., 99% benign, 1% fraud)?", ExpectedAnswer: "Resampling (SMOTE/undersampling), changing metrics (F1/Precision/Recall instead of Accuracy).", Keywords: []string{"imbalanced", "smote", "resampling", "precision", "recall"}},
		{Question: "Scenario: How would you select features if you have 1000 noisy features?", ExpectedAnswer: "Use L1 regularization (Lasso), Feature Importance (Random Forest), or PCA.", Keywords: []string{"feature", "selection", "lasso", "l1", "pca", "importance"}},
		{Question: "What is a Confusion Matrix?", ExpectedAnswer: "A table showing True Positives, False Positives, etc., to evaluate classification.", Keywords: []string{"confusion", "matrix", "true", "positive", "false", "classification"}},
		{Question: "Explain Precision vs Recall.", ExpectedAnswer: "Precision = Correct Positives / All Predicted Positives. Recall = Correct Positives / All Actual Positives.", Keywords: []string{"precision", "recall", "positive", "predicted", "actual"}},
		{Question: "What is ROC Curve and AUC?", ExpectedAnswer: "ROC plots TPR vs FPR. AUC measures separability (1.0 is perfect).", Keywords: []string{"roc", "curve", "auc", "tpr", "fpr", "separability"}},
		{Question: "What is Cross-Validation (K-Fold)?", ExpectedAnswer: "Splitting data into K parts, training on K-1 and testing on 1, K times. Reduces variance.", Keywords: []string{"cross", "validation", "k-fold", "split", "variance"}},
		{Question: "Difference between L1 and L2 Regularization?", ExpectedAnswer: "L1 (Lasso) shrinks weights to zero (feature selection); L2 (Ridge) shrinks weights evenly.", Keywords: []string{"l1", "l2", "lasso", "ridge", "regularization", "weights"}},
		{Question: "Gradient Descent vs Stochastic Gradient Descent (SGD)?", ExpectedAnswer: "GD updates using whole dataset; SGD updates using single sample (faster, noisier).", Keywords: []string{"gradient", "descent", "sgd", "stochastic", "update"}},
		{Question: "Bagging vs Boosting?", ExpectedAnswer: "Bagging (Random Forest) trains in parallel to reduce variance; Boosting (XGBoost) trains sequentially to reduce bias.", Keywords: []string{"bagging", "boosting", "random", "forest", "xgboost", "variance"}},
		{Question: "How does a Support Vector Machine (SVM) work?", ExpectedAnswer: "Finds the hyperplane that maximizes the margin between classes. Uses Kernel trick for non-linear.", Keywords: []string{"svm", "support", "vector", "hyperplane", "margin", "kernel"}},
		{Question: "What is K-Means Clustering?", ExpectedAnswer: "Partitioning n observations into k clusters where each belongs to the cluster with the nearest mean.", Keywords: []string{"k-means", "clustering", "partition", "centroid", "mean"}},
		{Question: "Explain PCA (Principal Component Analysis).", ExpectedAnswer: "Dimensionality reduction technique projecting data onto orthogonal axes measuring max variance.", Keywords: []string{"pca", "principal", "component", "dimensionality", "variance"}},
		{Question: "Assumption of Naive Bayes?", ExpectedAnswer: "Features are independent of each other (often false, but works well).", Keywords: []string{"naive", "bayes", "independent", "feature", "assumption"}},
		{Question: "How to handle Missing Data?", ExpectedAnswer: "Imputation (mean/median), dropping rows, or using algorithms that handle nulls.", Keywords: []string{"missing", "data", "imputation", "mean", "median", "null"}},
		{Question: "Normalization vs Standardization?", ExpectedAnswer: "Normalization scales to [0,1]; Standardization scales to Mean=0, Std=1.", Keywords: []string{"normalization", "standardization", "scale", "mean", "std"}},
		{Question: "Grid Search vs Random Search for Hyperparameters?", ExpectedAnswer: "Grid checks all combinations (slow); Random samples combinations (faster, often finds good enough).", Keywords: []string{"grid", "search", "random", "hyperparameter", "combination"}},
		{Question: "Advantages of XGBoost/LightGBM?", ExpectedAnswer: "Handling missing values, tree pruning, parallel processing, regularization.", Keywords: []string{"xgboost", "lightgbm", "pruning", "parallel", "regularization"}},
		{Question: "What is Collaborative Filtering?", ExpectedAnswer: "Recommendation technique based on past user-item interactions (User-based or Item-based).", Keywords: []string{"collaborative", "filtering", "recommendation", "user", "item"}},
		{Question: "Explain the F1 Score.", ExpectedAnswer: "Harmonic mean of Precision and Recall. Good for imbalanced datasets.", Keywords: []string{"f1", "score", "harmonic", "precision", "recall"}},
		{Question: "What is A/B Testing?", ExpectedAnswer: "Comparing two versions against each other to determine which performs better.", Keywords: []string{"ab", "testing", "compare", "version", "experiment"}},
	},
	"Deep_Learning": {
		{Question: "What is Backpropagation?", ExpectedAnswer: "Algorithm for training NNs by calculating gradients of loss with respect to weights.", Keywords: []string{"backpropagation", "gradient", "loss", "weights", "training"}},
		{Question: "Scenario: Your neural network loss is not decreasing. What could be wrong?", ExpectedAnswer: "Learning rate too high/low, bad initialization, or incorrect data preprocessing.", Keywords: []string{"loss", "learning", "rate", "initialization", "preprocessing"}},
		{Question: "Explain Dropout and why it works.", ExpectedAnswer: "Randomly disabling neurons during training to force the network to learn robust features (reduces overfitting).", Keywords: []string{"dropout", "neuron", "overfitting", "robust", "training"}},
		{Question: "What is the difference between a CNN and an RNN?", ExpectedAnswer: "CNNs use spatial features (images); RNNs use temporal/sequential features (text/time-series).", Keywords: []string{"cnn", "rnn", "spatial", "temporal", "sequential"}},
		{Question: "What is the vanishing gradient problem?", ExpectedAnswer: "Gradients become zero in deep layers, stopping learning. Fix with ReLU or LSTM/ResNets.", Keywords: []string{"vanishing", "gradient", "deep", "relu", "lstm", "resnet"}},
		{Question: "Explain Activation Functions (ReLU vs Sigmoid).", ExpectedAnswer: "Sigmoid squashes to [0,1] (vanishing gradient risk). ReLU outputs input if >0 (sparse, efficient).", Keywords: []string{"activation", "relu", "sigmoid", "function", "squash"}},
		{Question: "What is Batch Normalization?", ExpectedAnswer: "Normalizing layer inputs to mean 0, var 1 per batch. Speeds up training and stabilizes gradients.", Keywords: []string{"batch", "normalization", "layer", "mean", "variance"}},
		{Question: "Difference between Xavier and He Initialization?", ExpectedAnswer: "Xavier is for Sigmoid/Tanh; He is optimized for ReLU to prevent signal dying out.", Keywords: []string{"xavier", "he", "initialization", "sigmoid", "relu"}},
		{Question: "Compare Adam vs SGD with Momentum.", ExpectedAnswer: "Adam adapts learning rates per parameter; SGD Momentum accelerates in relevant direction.", Keywords: []string{"adam", "sgd", "momentum", "optimizer", "learning", "rate"}},
		{Question: "What is Padding and Stride in CNN?", ExpectedAnswer: "Padding adds border pixels (keeps size); Stride is step size of filter (reduces size).", Keywords: []string{"padding", "stride", "cnn", "filter", "convolution"}},
		{Question: "Max Pooling vs Average Pooling?", ExpectedAnswer: "Max selects sharpest feature; Average smooths out features.", Keywords: []string{"max", "pooling", "average", "feature", "downsample"}},
		{Question: "What is Transfer Learning?", ExpectedAnswer: "Using a pre-trained model (e.g., ResNet on ImageNet) and fine-tuning it for a new task.", Keywords: []string{"transfer", "learning", "pretrained", "finetune", "resnet"}},
		{Question: "LSTM vs GRU?", ExpectedAnswer: "LSTM has 3 gates (forget, input, output); GRU has 2 (reset, update). GRU is faster/simpler.", Keywords: []string{"lstm", "gru", "gate", "forget", "reset", "recurrent"}},
		{Question: "Explain Attention Mechanism.", ExpectedAnswer: "Allows model to focus on specific parts of input sequence regardless of distance.", Keywords: []string{"attention", "mechanism", "focus", "sequence", "transformer"}},
		{Question: "BERT vs GPT architecture?", ExpectedAnswer: "BERT is Encoder-only (bidirectional, understanding); GPT is Decoder-only (unidirectional, generation).", Keywords: []string{"bert", "gpt", "encoder", "decoder", "bidirectional"}},
		{Question: "What is an Autoencoder?", ExpectedAnswer: "NN that compresses input to latent space and reconstructs it. Used for denoising/dimensionality reduction.", Keywords: []string{"autoencoder", "latent", "space", "compress", "reconstruct"}},
		{Question: "Explain GANs (Generative Adversarial Networks).", ExpectedAnswer: "Two networks (Generator vs Discriminator) competing. Generator creates fakes; Discriminator detects them.", Keywords: []string{"gan", "generative", "adversarial", "generator", "discriminator"}},
		{Question: "Exploding Gradient Problem?", ExpectedAnswer: "Gradients get too large, creating NaN weights. Fix with Gradient Clipping.", Keywords: []string{"exploding", "gradient", "nan", "clipping", "weights"}},
		{Question: "What are Skip Connections (ResNet)?", ExpectedAnswer: "Adding input directly to deeper layer output. Solves vanishing gradient in deep nets.", Keywords: []string{"skip", "connection", "resnet", "residual", "deep"}},
		{Question: "CrossEntropy vs MSE Loss?", ExpectedAnswer: "CrossEntropy for classification (probability distance); MSE for regression (value distance).", Keywords: []string{"crossentropy", "mse", "loss", "classification", "regression"}},
		{Question: "What are Word Embeddings (Word2Vec/GloVe)?", ExpectedAnswer: "Vector representations of words where similar meanings are close in space.", Keywords: []string{"word", "embedding", "word2vec", "glove", "vector"}},
		{Question: "Explain Temperature in Softmax.", ExpectedAnswer: "Controls randomness. High temp = flat distribution (creative); Low temp = peaked (confident).", Keywords: []string{"temperature", "softmax", "distribution", "randomness"}},
		{Question: "Epoch vs Batch vs Iteration?", ExpectedAnswer: "Epoch = 1 pass of full dataset; Batch = subset processed at once; Iteration = 1 step of gradient update.", Keywords: []string{"epoch", "batch", "iteration", "dataset", "gradient"}},
		{Question: "What is Model Quantization?", ExpectedAnswer: "Reducing precision of weights (float32 -> int8) to reduce model size/latency.", Keywords: []string{"quantization", "precision", "float32", "int8", "compression"}},
	},
}
